package lwes

import (
	"net"
)

// The getters below return ErrAttributeNotFound for a missing name and
// ErrTypeMismatch when the attribute was stored with a different type.

func (e *Event) GetUint16(name string) (uint16, error) {
	a, err := e.lookupType(name, TypeUint16)
	return uint16(a.num), err
}

func (e *Event) GetInt16(name string) (int16, error) {
	a, err := e.lookupType(name, TypeInt16)
	return int16(a.num), err
}

func (e *Event) GetUint32(name string) (uint32, error) {
	a, err := e.lookupType(name, TypeUint32)
	return uint32(a.num), err
}

func (e *Event) GetInt32(name string) (int32, error) {
	a, err := e.lookupType(name, TypeInt32)
	return int32(a.num), err
}

func (e *Event) GetUint64(name string) (uint64, error) {
	a, err := e.lookupType(name, TypeUint64)
	return a.num, err
}

func (e *Event) GetInt64(name string) (int64, error) {
	a, err := e.lookupType(name, TypeInt64)
	return int64(a.num), err
}

func (e *Event) GetBool(name string) (bool, error) {
	a, err := e.lookupType(name, TypeBoolean)
	return a.num != 0, err
}

func (e *Event) GetString(name string) (string, error) {
	a, err := e.lookupType(name, TypeString)
	return a.str, err
}

// GetIPAddr returns a fresh 4-byte copy of the stored address.
func (e *Event) GetIPAddr(name string) (net.IP, error) {
	a, err := e.lookupType(name, TypeIPAddr)
	if err != nil {
		return nil, err
	}
	return a.value().(net.IP), nil
}
