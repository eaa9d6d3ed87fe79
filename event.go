package lwes

import (
	"fmt"
)

// Event is a named record of typed attributes. An Event is not safe for
// concurrent use; give each goroutine its own or serialize access.
type Event struct {
	name  string
	named bool
	attrs attributes
	db    TypeDB // shared, never owned; nil disables validation
}

// NewEvent returns an empty event without a name. db may be nil.
func NewEvent(db TypeDB) *Event {
	return &Event{
		attrs: newAttributes(),
		db:    db,
	}
}

// NewNamedEvent returns an empty event called name.
func NewNamedEvent(db TypeDB, name string) (*Event, error) {
	e := NewEvent(db)
	if err := e.SetName(name); err != nil {
		e.Destroy()
		return nil, err
	}
	return e, nil
}

// NewEventWithEncoding returns an event called name carrying the reserved encoding attribute.
func NewEventWithEncoding(db TypeDB, name string, encoding int16) (*Event, error) {
	e, err := NewNamedEvent(db, name)
	if err != nil {
		return nil, err
	}
	if _, err := e.SetEncoding(encoding); err != nil {
		e.Destroy()
		return nil, err
	}
	return e, nil
}

// Destroy releases the name and every attribute, leaving an empty unnamed
// event bound to the same TypeDB. It is safe to call on a nil event.
func (e *Event) Destroy() {
	if e == nil {
		return
	}
	e.name = ""
	e.named = false
	e.attrs.reset()
}

// SetName names the event. A name can only be set once.
func (e *Event) SetName(name string) error {
	if e == nil {
		return ErrInvalidArgument
	}
	if e.named {
		return fmt.Errorf("event name %q: %w", e.name, ErrAlreadySet)
	}
	e.name = name
	e.named = true
	return nil
}

// Name returns the event name, or "" if it has none.
func (e *Event) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// HasName reports whether SetName has succeeded on e.
func (e *Event) HasName() bool {
	return e != nil && e.named
}

// NumAttributes returns the number of attributes stored, including the encoding.
func (e *Event) NumAttributes() uint16 {
	if e == nil {
		return 0
	}
	return uint16(e.attrs.len())
}

// TypeDB returns the type db the event validates against, or nil.
func (e *Event) TypeDB() TypeDB {
	if e == nil {
		return nil
	}
	return e.db
}

// SetEncoding stores the reserved encoding attribute. It fails with
// ErrAlreadySet if the event holds an encoding attribute of any type.
func (e *Event) SetEncoding(encoding int16) (int, error) {
	if e == nil {
		return 0, ErrInvalidArgument
	}
	if _, ok := e.attrs.get(EncodingAttribute); ok {
		return 0, fmt.Errorf("encoding: %w", ErrAlreadySet)
	}
	return e.SetInt16(EncodingAttribute, encoding)
}

// Encoding returns the value of the reserved encoding attribute.
func (e *Event) Encoding() (int16, error) {
	return e.GetInt16(EncodingAttribute)
}

// Keys returns the attribute names in store order.
func (e *Event) Keys() []string {
	if e == nil {
		return nil
	}
	keys := make([]string, 0, e.attrs.len())
	e.attrs.each(func(name string, _ attribute) bool {
		keys = append(keys, name)
		return true
	})
	return keys
}

// Range calls fn with the name and type of each attribute in store order
// until fn returns false.
func (e *Event) Range(fn func(name string, t Type) bool) {
	if e == nil {
		return
	}
	e.attrs.each(func(name string, a attribute) bool {
		return fn(name, a.typ)
	})
}

// TypeOf returns the type of the named attribute.
func (e *Event) TypeOf(name string) (Type, bool) {
	if e == nil {
		return TypeUndefined, false
	}
	a, ok := e.attrs.get(name)
	return a.typ, ok
}

// Value returns the named attribute as uint16, int16, uint32, int32, uint64,
// int64, bool, net.IP or string depending on its type.
func (e *Event) Value(name string) (interface{}, error) {
	a, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	return a.value(), nil
}

// Equal reports whether both events have the same name and the same set of
// typed attributes. Attribute order is ignored.
func (e *Event) Equal(o *Event) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.name != o.name || e.attrs.len() != o.attrs.len() {
		return false
	}
	equal := true
	e.attrs.each(func(name string, a attribute) bool {
		b, ok := o.attrs.get(name)
		equal = ok && a == b
		return equal
	})
	return equal
}

// add validates a against the type db and inserts it. It returns the new attribute count.
func (e *Event) add(name string, a attribute) (int, error) {
	if e == nil || name == "" {
		return 0, ErrInvalidArgument
	}
	if e.db != nil {
		if !e.db.AttributeAllowed(e.name, name) {
			return 0, fmt.Errorf("attribute %q on event %q: %w", name, e.name, ErrAttributeRejected)
		}
		if !e.db.TypeAllowed(a.typ, name, e.name) {
			return 0, fmt.Errorf("attribute %q on event %q as %s: %w", name, e.name, a.typ, ErrTypeRejected)
		}
	}
	if e.attrs.len() >= MaxAttributes {
		return 0, ErrTooManyAttributes
	}
	if !e.attrs.put(name, a) {
		return 0, fmt.Errorf("attribute %q: %w", name, ErrDuplicateAttribute)
	}
	return e.attrs.len(), nil
}

func (e *Event) lookup(name string) (attribute, error) {
	if e == nil || name == "" {
		return attribute{}, ErrInvalidArgument
	}
	a, ok := e.attrs.get(name)
	if !ok {
		return attribute{}, fmt.Errorf("attribute %q: %w", name, ErrAttributeNotFound)
	}
	return a, nil
}

// lookupType is lookup that also requires the stored type to be t.
func (e *Event) lookupType(name string, t Type) (attribute, error) {
	a, err := e.lookup(name)
	if err != nil {
		return a, err
	}
	if a.typ != t {
		return attribute{}, fmt.Errorf("attribute %q is %s, not %s: %w", name, a.typ, t, ErrTypeMismatch)
	}
	return a, nil
}
