package lwes

import (
	"net"

	"github.com/atlassian/lwes/internal/marshal"
)

// DeserializeBuffers is reusable scratch space for FromBytes, sized for the
// longest short and long strings. It is not safe for concurrent use.
type DeserializeBuffers struct {
	short []byte
	long  []byte
}

func NewDeserializeBuffers() *DeserializeBuffers {
	return &DeserializeBuffers{
		short: make([]byte, ShortStringMax+1),
		long:  make([]byte, LongStringMax+1),
	}
}

// ToBytes serializes e into buf starting at offset and returns the number of
// bytes written. The encoding attribute, if any, is written before all other
// attributes; the rest follow in store order. Nothing is written past len(buf),
// but a failed call may leave a partial event in buf.
func (e *Event) ToBytes(buf []byte, offset int) (int, error) {
	if e == nil || len(buf) == 0 || offset < 0 || offset >= len(buf) {
		return 0, ErrInvalidArgument
	}
	w := marshal.NewWriter(buf, offset)

	if err := w.ShortString(e.name); err != nil {
		return 0, encodeError(FieldEventName, "", TypeUndefined, err)
	}
	if err := w.Uint16(uint16(e.attrs.len())); err != nil {
		return 0, encodeError(FieldAttributeCount, "", TypeUndefined, err)
	}

	if enc, ok := e.attrs.get(EncodingAttribute); ok {
		if enc.typ != TypeInt16 {
			return 0, encodeError(FieldEncoding, EncodingAttribute, enc.typ, ErrMalformedEncoding)
		}
		if err := writeAttribute(w, EncodingAttribute, enc); err != nil {
			err.Field = FieldEncoding
			return 0, err
		}
	}

	var err *CodecError
	e.attrs.each(func(name string, a attribute) bool {
		if name == EncodingAttribute {
			return true
		}
		err = writeAttribute(w, name, a)
		return err == nil
	})
	if err != nil {
		return 0, err
	}
	return w.Offset() - offset, nil
}

func writeAttribute(w *marshal.Writer, name string, a attribute) *CodecError {
	if err := w.ShortString(name); err != nil {
		return encodeError(FieldAttributeName, name, a.typ, err)
	}
	if err := w.Byte(byte(a.typ)); err != nil {
		return encodeError(FieldAttributeType, name, a.typ, err)
	}
	var err error
	switch a.typ {
	case TypeUint16, TypeInt16:
		err = w.Uint16(uint16(a.num))
	case TypeUint32, TypeInt32:
		err = w.Uint32(uint32(a.num))
	case TypeUint64, TypeInt64:
		err = w.Uint64(a.num)
	case TypeBoolean:
		err = w.Bool(a.num != 0)
	case TypeIPAddr:
		err = w.IPAddr(a.ip())
	case TypeString:
		err = w.LongString(a.str)
	default:
		// Setters only store valid types.
		err = ErrUnknownType
	}
	if err != nil {
		return encodeError(FieldAttributeValue, name, a.typ, err)
	}
	return nil
}

// EncodedSize returns the number of bytes ToBytes would write for e.
func (e *Event) EncodedSize() int {
	if e == nil {
		return 0
	}
	size := 1 + len(e.name) + 2
	e.attrs.each(func(name string, a attribute) bool {
		size += 1 + len(name) + 1
		if a.typ == TypeString {
			size += 2 + len(a.str)
		} else {
			size += a.typ.Size()
		}
		return true
	})
	return size
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Event) MarshalBinary() ([]byte, error) {
	if e == nil {
		return nil, ErrInvalidArgument
	}
	buf := make([]byte, e.EncodedSize())
	n, err := e.ToBytes(buf, 0)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// FromBytes reads one serialized event from buf at offset into e and returns
// the number of bytes consumed. Each attribute is installed through the same
// setter a producer would use, so the event's TypeDB applies. e should be
// fresh: a named event is rejected, and attributes already present are kept.
// On error, everything read before the failing field stays applied.
func (e *Event) FromBytes(buf []byte, offset int, tmp *DeserializeBuffers) (int, error) {
	if e == nil || len(buf) == 0 || offset < 0 || offset >= len(buf) || tmp == nil {
		return 0, ErrInvalidArgument
	}
	r := marshal.NewReader(buf, offset)

	name, err := r.ShortString(tmp.short)
	if err != nil {
		return 0, decodeError(FieldEventName, "", TypeUndefined, err)
	}
	if err = e.SetName(string(name)); err != nil {
		return 0, decodeError(FieldEventName, "", TypeUndefined, err)
	}

	count, err := r.Uint16()
	if err != nil {
		return 0, decodeError(FieldAttributeCount, "", TypeUndefined, err)
	}

	for i := 0; i < int(count); i++ {
		if err := e.readAttribute(r, tmp); err != nil {
			return 0, err
		}
	}
	return r.Offset() - offset, nil
}

func (e *Event) readAttribute(r *marshal.Reader, tmp *DeserializeBuffers) *CodecError {
	rawName, err := r.ShortString(tmp.short)
	if err != nil {
		return decodeError(FieldAttributeName, "", TypeUndefined, err)
	}
	name := string(rawName)

	token, err := r.Byte()
	if err != nil {
		return decodeError(FieldAttributeType, name, TypeUndefined, err)
	}
	t := Type(token)

	var setErr error
	switch t {
	case TypeUint16:
		var v uint16
		if v, err = r.Uint16(); err == nil {
			_, setErr = e.SetUint16(name, v)
		}
	case TypeInt16:
		var v int16
		if v, err = r.Int16(); err == nil {
			_, setErr = e.SetInt16(name, v)
		}
	case TypeUint32:
		var v uint32
		if v, err = r.Uint32(); err == nil {
			_, setErr = e.SetUint32(name, v)
		}
	case TypeInt32:
		var v int32
		if v, err = r.Int32(); err == nil {
			_, setErr = e.SetInt32(name, v)
		}
	case TypeUint64:
		var v uint64
		if v, err = r.Uint64(); err == nil {
			_, setErr = e.SetUint64(name, v)
		}
	case TypeInt64:
		var v int64
		if v, err = r.Int64(); err == nil {
			_, setErr = e.SetInt64(name, v)
		}
	case TypeBoolean:
		var v bool
		if v, err = r.Bool(); err == nil {
			_, setErr = e.SetBool(name, v)
		}
	case TypeIPAddr:
		var v [4]byte
		if v, err = r.IPAddr(); err == nil {
			_, setErr = e.SetIPAddr(name, net.IP(v[:]))
		}
	case TypeString:
		var v []byte
		if v, err = r.LongString(tmp.long); err == nil {
			_, setErr = e.SetString(name, string(v))
		}
	default:
		return decodeError(FieldAttributeType, name, t, ErrUnknownType)
	}
	if err != nil {
		return decodeError(FieldAttributeValue, name, t, err)
	}
	if setErr != nil {
		return decodeError(FieldAttributeInsert, name, t, setErr)
	}
	return nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. e should be fresh.
func (e *Event) UnmarshalBinary(data []byte) error {
	_, err := e.FromBytes(data, 0, NewDeserializeBuffers())
	return err
}

// Decode reads a single event from data, validating against db if it is not nil.
func Decode(db TypeDB, data []byte) (*Event, error) {
	e := NewEvent(db)
	if err := e.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return e, nil
}

func encodeError(f Field, attr string, t Type, err error) *CodecError {
	return &CodecError{Op: "encode", Field: f, Attribute: attr, Type: t, Err: err}
}

func decodeError(f Field, attr string, t Type, err error) *CodecError {
	return &CodecError{Op: "decode", Field: f, Attribute: attr, Type: t, Err: err}
}
