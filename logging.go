package lwes

import (
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields returns the event as logrus fields: "event" holds the event name and
// each attribute is keyed by its own name.
func (e *Event) Fields() logrus.Fields {
	if e == nil {
		return logrus.Fields{}
	}
	fields := make(logrus.Fields, e.attrs.len()+1)
	e.attrs.each(func(name string, a attribute) bool {
		if ip, ok := a.value().(net.IP); ok {
			fields[name] = ip.String()
		} else {
			fields[name] = a.value()
		}
		return true
	})
	// Set last so an attribute called "event" cannot hide the name.
	fields["event"] = e.name
	return fields
}

// String renders the event as Name[attr:type=value ...] in store order.
func (e *Event) String() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(e.name)
	sb.WriteByte('[')
	first := true
	e.attrs.each(func(name string, a attribute) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%s:%s=%v", name, a.typ, a.value())
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
