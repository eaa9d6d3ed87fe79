package lwes

import (
	"errors"
	"fmt"

	"github.com/atlassian/lwes/internal/marshal"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrAlreadySet         = errors.New("already set")
	ErrDuplicateAttribute = errors.New("duplicate attribute")
	ErrTooManyAttributes  = errors.New("too many attributes")
	ErrAttributeNotFound  = errors.New("attribute not found")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrNumericParse       = errors.New("numeric parse error")

	// ErrSchemaRejected is matched by both ErrAttributeRejected and ErrTypeRejected.
	ErrSchemaRejected    = errors.New("rejected by type db")
	ErrAttributeRejected = fmt.Errorf("%w: attribute not allowed", ErrSchemaRejected)
	ErrTypeRejected      = fmt.Errorf("%w: type not allowed", ErrSchemaRejected)

	ErrTruncated = marshal.ErrTruncated
	ErrTooLong   = marshal.ErrTooLong

	// ErrMalformedEncoding is matched by ErrUnknownType.
	ErrMalformedEncoding = errors.New("malformed encoding")
	ErrUnknownType       = fmt.Errorf("%w: unknown type token", ErrMalformedEncoding)
)

// Field identifies the part of a serialized event an encode or decode step was working on.
type Field int

const (
	FieldEventName Field = iota
	FieldAttributeCount
	FieldEncoding
	FieldAttributeName
	FieldAttributeType
	FieldAttributeValue
	// FieldAttributeInsert is a decoded attribute that the event refused.
	FieldAttributeInsert
)

func (f Field) String() string {
	switch f {
	case FieldEventName:
		return "event name"
	case FieldAttributeCount:
		return "attribute count"
	case FieldEncoding:
		return "encoding"
	case FieldAttributeName:
		return "attribute name"
	case FieldAttributeType:
		return "attribute type"
	case FieldAttributeValue:
		return "attribute value"
	case FieldAttributeInsert:
		return "attribute insert"
	default:
		return "unknown field"
	}
}

// CodecError reports which field of which attribute an encode or decode failed on.
type CodecError struct {
	Op        string // "encode" or "decode"
	Field     Field
	Attribute string // empty for event level fields
	Type      Type   // TypeUndefined when not yet known
	Err       error
}

func (e *CodecError) Error() string {
	switch {
	case e.Attribute == "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Field, e.Err)
	case e.Type == TypeUndefined:
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Field, e.Attribute, e.Err)
	default:
		return fmt.Sprintf("%s %s %q (%s): %v", e.Op, e.Field, e.Attribute, e.Type, e.Err)
	}
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
