package pool

import (
	"sync"

	"github.com/atlassian/lwes"
)

// EventPool is a strongly typed wrapper around a sync.Pool for *lwes.Event. Events from
// one pool all validate against the same TypeDB; decoding into a recycled event
// reuses its attribute store.
type EventPool struct {
	p sync.Pool
}

// NewEventPool returns a pool of events bound to db, which may be nil.
func NewEventPool(db lwes.TypeDB) *EventPool {
	return &EventPool{
		p: sync.Pool{
			New: func() interface{} {
				return lwes.NewEvent(db)
			},
		},
	}
}

// Get returns an empty, unnamed event.
func (ep *EventPool) Get() *lwes.Event {
	return ep.p.Get().(*lwes.Event)
}

// Put destroys e and returns it to the pool. e must not be used afterwards.
func (ep *EventPool) Put(e *lwes.Event) {
	if e == nil {
		return
	}
	e.Destroy()
	ep.p.Put(e)
}
