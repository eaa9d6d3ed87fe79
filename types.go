package lwes

import (
	"fmt"

	"github.com/atlassian/lwes/internal/marshal"
)

// Type is the one-byte token identifying an attribute's wire representation.
// The set is closed; adding a token is a wire format change.
type Type byte

const (
	// TypeUndefined is never written to the wire.
	TypeUndefined Type = 0x00
	TypeUint16    Type = 0x01
	TypeInt16     Type = 0x02
	TypeUint32    Type = 0x03
	TypeInt32     Type = 0x04
	TypeString    Type = 0x05
	TypeIPAddr    Type = 0x06
	TypeInt64     Type = 0x07
	TypeUint64    Type = 0x08
	TypeBoolean   Type = 0x09
)

const (
	// EncodingAttribute is the reserved INT16 attribute that is always serialized first.
	EncodingAttribute = "enc"

	// EncodingISO8859_1 marks string payloads as ISO-8859-1.
	EncodingISO8859_1 int16 = 0
	// EncodingUTF8 marks string payloads as UTF-8.
	EncodingUTF8 int16 = 1
	// DefaultEncoding is the encoding used when none is specified.
	DefaultEncoding = EncodingUTF8

	// ShortStringMax is the longest event or attribute name that can be serialized.
	ShortStringMax = marshal.ShortStringMax
	// LongStringMax is the longest string value that can be serialized.
	LongStringMax = marshal.LongStringMax
	// MaxAttributes is the most attributes an event can hold, bounded by the 16-bit count field.
	MaxAttributes = 0xffff
	// MaxEventSize is the largest serialized event a single UDP datagram can
	// carry. It is not an encoding limit: events with long strings or many
	// attributes encode past it into a buffer of EncodedSize bytes.
	MaxEventSize = 0xffff
)

var typeNames = map[Type]string{
	TypeUint16:  "uint16",
	TypeInt16:   "int16",
	TypeUint32:  "uint32",
	TypeInt32:   "int32",
	TypeString:  "string",
	TypeIPAddr:  "ip_addr",
	TypeInt64:   "int64",
	TypeUint64:  "uint64",
	TypeBoolean: "boolean",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("undefined(0x%02x)", byte(t))
}

// Valid reports whether t is one of the wire type tokens.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Size is the fixed payload width of t in bytes, or 0 for variable width and invalid types.
func (t Type) Size() int {
	switch t {
	case TypeBoolean:
		return 1
	case TypeUint16, TypeInt16:
		return 2
	case TypeUint32, TypeInt32, TypeIPAddr:
		return 4
	case TypeUint64, TypeInt64:
		return 8
	default:
		return 0
	}
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return TypeUndefined, fmt.Errorf("unknown type %q", s)
}

// TypeDB approves attributes for an event. Implementations are shared across
// events and must be safe for concurrent reads.
type TypeDB interface {
	// AttributeAllowed reports whether eventName may carry attrName.
	AttributeAllowed(eventName, attrName string) bool
	// TypeAllowed reports whether attrName on eventName may hold a value of type t.
	TypeAllowed(t Type, attrName, eventName string) bool
}
