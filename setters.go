package lwes

import (
	"net"
)

// The setters below copy value into the event under name. They validate
// against the event's TypeDB when one is attached, reject duplicate names
// without touching the existing value, and return the new attribute count.

func (e *Event) SetUint16(name string, value uint16) (int, error) {
	return e.add(name, attribute{typ: TypeUint16, num: uint64(value)})
}

func (e *Event) SetInt16(name string, value int16) (int, error) {
	return e.add(name, attribute{typ: TypeInt16, num: uint64(uint16(value))})
}

func (e *Event) SetUint32(name string, value uint32) (int, error) {
	return e.add(name, attribute{typ: TypeUint32, num: uint64(value)})
}

func (e *Event) SetInt32(name string, value int32) (int, error) {
	return e.add(name, attribute{typ: TypeInt32, num: uint64(uint32(value))})
}

func (e *Event) SetUint64(name string, value uint64) (int, error) {
	return e.add(name, attribute{typ: TypeUint64, num: value})
}

func (e *Event) SetInt64(name string, value int64) (int, error) {
	return e.add(name, attribute{typ: TypeInt64, num: uint64(value)})
}

func (e *Event) SetBool(name string, value bool) (int, error) {
	a := attribute{typ: TypeBoolean}
	if value {
		a.num = 1
	}
	return e.add(name, a)
}

// SetString stores value. Strings longer than LongStringMax are accepted here
// but cannot be serialized.
func (e *Event) SetString(name string, value string) (int, error) {
	return e.add(name, attribute{typ: TypeString, str: value})
}

// SetIPAddr stores an IPv4 address. Other address families are rejected.
func (e *Event) SetIPAddr(name string, ip net.IP) (int, error) {
	v4 := ip.To4()
	if v4 == nil {
		return 0, ErrInvalidArgument
	}
	var addr [4]byte
	copy(addr[:], v4)
	return e.add(name, ipAttribute(addr))
}
