// Package typedb is an in-memory lwes.TypeDB. Schemas are registered in code;
// a Registry is safe to share between any number of events and goroutines.
package typedb

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/atlassian/lwes"
)

// Registry maps event names to their permitted attributes and types. Meta
// attributes are permitted on every registered event.
type Registry struct {
	logger logrus.FieldLogger

	mu     sync.RWMutex
	events map[string]map[string]lwes.Type
	meta   map[string]lwes.Type
}

// New returns a registry that already allows the encoding attribute as INT16 on
// every event. A nil logger means logrus.StandardLogger().
func New(logger logrus.FieldLogger) *Registry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Registry{
		logger: logger,
		events: make(map[string]map[string]lwes.Type),
		meta: map[string]lwes.Type{
			lwes.EncodingAttribute: lwes.TypeInt16,
		},
	}
}

// AddEvent registers an event name with no attributes of its own.
func (r *Registry) AddEvent(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addEvent(event)
}

func (r *Registry) addEvent(event string) map[string]lwes.Type {
	attrs, ok := r.events[event]
	if !ok {
		attrs = make(map[string]lwes.Type)
		r.events[event] = attrs
	}
	return attrs
}

// AddAttribute permits attr of type t on event, registering event if needed.
// Re-adding an attribute with the same type is a no-op.
func (r *Registry) AddAttribute(event, attr string, t lwes.Type) error {
	if !t.Valid() {
		return fmt.Errorf("attribute %q on %q: %w", attr, event, lwes.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.meta[attr]; ok && existing != t {
		return fmt.Errorf("attribute %q is a meta attribute of type %s", attr, existing)
	}
	attrs := r.addEvent(event)
	if existing, ok := attrs[attr]; ok && existing != t {
		return fmt.Errorf("attribute %q on %q already registered as %s", attr, event, existing)
	}
	attrs[attr] = t
	return nil
}

// AddMetaAttribute permits attr of type t on every event.
func (r *Registry) AddMetaAttribute(attr string, t lwes.Type) error {
	if !t.Valid() {
		return fmt.Errorf("meta attribute %q: %w", attr, lwes.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.meta[attr]; ok && existing != t {
		return fmt.Errorf("meta attribute %q already registered as %s", attr, existing)
	}
	for event, attrs := range r.events {
		if existing, ok := attrs[attr]; ok && existing != t {
			return fmt.Errorf("attribute %q on %q already registered as %s", attr, event, existing)
		}
	}
	r.meta[attr] = t
	return nil
}

// HasEvent reports whether event has been registered.
func (r *Registry) HasEvent(event string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.events[event]
	return ok
}

func (r *Registry) lookup(event, attr string) (lwes.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attrs, ok := r.events[event]
	if !ok {
		return lwes.TypeUndefined, false
	}
	if t, ok := attrs[attr]; ok {
		return t, true
	}
	t, ok := r.meta[attr]
	return t, ok
}

// AttributeAllowed implements lwes.TypeDB.
func (r *Registry) AttributeAllowed(event, attr string) bool {
	if _, ok := r.lookup(event, attr); !ok {
		r.logger.WithFields(logrus.Fields{
			"event":     event,
			"attribute": attr,
		}).Debug("Attribute not in type db")
		return false
	}
	return true
}

// TypeAllowed implements lwes.TypeDB.
func (r *Registry) TypeAllowed(t lwes.Type, attr, event string) bool {
	expected, ok := r.lookup(event, attr)
	if !ok || expected != t {
		r.logger.WithFields(logrus.Fields{
			"event":     event,
			"attribute": attr,
			"type":      t,
			"expected":  expected,
		}).Debug("Attribute type rejected by type db")
		return false
	}
	return true
}
