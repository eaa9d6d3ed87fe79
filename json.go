package lwes

import (
	"net"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON renders the event as
//
//	{"name":"Test","attributes":{"enc":{"type":"int16","value":1},...}}
//
// with attributes in store order. IP addresses are dotted-decimal strings.
func (e *Event) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	if e == nil {
		stream.WriteNil()
		return append([]byte(nil), stream.Buffer()...), stream.Error
	}

	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(e.name)
	stream.WriteMore()
	stream.WriteObjectField("attributes")
	stream.WriteObjectStart()
	first := true
	e.attrs.each(func(name string, a attribute) bool {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(name)
		stream.WriteObjectStart()
		stream.WriteObjectField("type")
		stream.WriteString(a.typ.String())
		stream.WriteMore()
		stream.WriteObjectField("value")
		if ip, ok := a.value().(net.IP); ok {
			stream.WriteString(ip.String())
		} else {
			stream.WriteVal(a.value())
		}
		stream.WriteObjectEnd()
		return true
	})
	stream.WriteObjectEnd()
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
