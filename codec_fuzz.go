//go:build gofuzz
// +build gofuzz

package lwes

import (
	"fmt"
)

var fuzzBuffers = NewDeserializeBuffers()

func Fuzz(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	e := NewEvent(nil)
	n, err := e.FromBytes(data, 0, fuzzBuffers)
	if err != nil {
		return 0
	}
	if n > len(data) {
		panic(fmt.Errorf("consumed %d of %d bytes", n, len(data)))
	}
	out := make([]byte, e.EncodedSize())
	m, err := e.ToBytes(out, 0)
	if err != nil {
		if enc, ok := e.attrs.get(EncodingAttribute); ok && enc.typ != TypeInt16 {
			return 0
		}
		panic(fmt.Errorf("re-encode of %s: %v", e, err))
	}
	again := NewEvent(nil)
	if _, err := again.FromBytes(out[:m], 0, fuzzBuffers); err != nil {
		panic(fmt.Errorf("decode of re-encoded %s: %v", e, err))
	}
	if !e.Equal(again) {
		panic(fmt.Errorf("round trip mismatch:\n%s\n%s", e, again))
	}
	return 1
}
