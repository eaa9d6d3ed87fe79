package pool

import (
	"sync"

	"github.com/atlassian/lwes"
)

// DeserializeBuffers is a strongly typed wrapper around a sync.Pool for the
// scratch space lwes.Event.FromBytes needs.
type DeserializeBuffers struct {
	p sync.Pool
}

func NewDeserializeBuffers() *DeserializeBuffers {
	return &DeserializeBuffers{
		p: sync.Pool{
			New: func() interface{} {
				return lwes.NewDeserializeBuffers()
			},
		},
	}
}

func (p *DeserializeBuffers) Get() *lwes.DeserializeBuffers {
	return p.p.Get().(*lwes.DeserializeBuffers)
}

func (p *DeserializeBuffers) Put(b *lwes.DeserializeBuffers) {
	p.p.Put(b)
}

// EncodeBuffers hands out byte slices for lwes.Event.ToBytes. Buffers start at
// lwes.MaxEventSize and are grown when an event needs more.
type EncodeBuffers struct {
	p sync.Pool
}

func NewEncodeBuffers() *EncodeBuffers {
	return &EncodeBuffers{
		p: sync.Pool{
			New: func() interface{} {
				b := make([]byte, lwes.MaxEventSize)
				return &b
			},
		},
	}
}

// Get returns a buffer of at least size bytes, and never less than
// lwes.MaxEventSize. Its contents are undefined.
func (p *EncodeBuffers) Get(size int) *[]byte {
	b := p.p.Get().(*[]byte)
	if cap(*b) < size {
		*b = make([]byte, size)
	}
	*b = (*b)[:cap(*b)]
	return b
}

func (p *EncodeBuffers) Put(b *[]byte) {
	p.p.Put(b)
}
