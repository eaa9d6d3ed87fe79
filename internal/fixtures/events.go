package fixtures

import (
	"fmt"
	"net"

	"github.com/atlassian/lwes"
)

type EventOpt func(e *lwes.Event) error

// MakeEvent builds an unvalidated event named name for tests. It panics if
// any option fails, as that is a broken test rather than a failure under test.
func MakeEvent(name string, opts ...EventOpt) *lwes.Event {
	e, err := lwes.NewNamedEvent(nil, name)
	if err != nil {
		panic(err)
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			panic(fmt.Sprintf("failed to build event %s: %v", name, err))
		}
	}
	return e
}

func Encoding(v int16) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetEncoding(v)
		return err
	}
}

func Uint16(name string, v uint16) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetUint16(name, v)
		return err
	}
}

func Int16(name string, v int16) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetInt16(name, v)
		return err
	}
}

func Uint32(name string, v uint32) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetUint32(name, v)
		return err
	}
}

func Int32(name string, v int32) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetInt32(name, v)
		return err
	}
}

func Uint64(name string, v uint64) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetUint64(name, v)
		return err
	}
}

func Int64(name string, v int64) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetInt64(name, v)
		return err
	}
}

func Bool(name string, v bool) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetBool(name, v)
		return err
	}
}

func IPAddr(name string, ip string) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetIPAddr(name, net.ParseIP(ip))
		return err
	}
}

func String(name string, v string) EventOpt {
	return func(e *lwes.Event) error {
		_, err := e.SetString(name, v)
		return err
	}
}

// AllTypes sets one attribute of every wire type, named after the type.
func AllTypes(e *lwes.Event) error {
	for _, opt := range []EventOpt{
		Uint16("uint16", 0xfffe),
		Int16("int16", -2),
		Uint32("uint32", 0xfffffffe),
		Int32("int32", -70000),
		Uint64("uint64", 0xfffffffffffffffe),
		Int64("int64", -1<<40),
		Bool("boolean", true),
		IPAddr("ip_addr", "192.168.1.20"),
		String("string", "hello, world"),
	} {
		if err := opt(e); err != nil {
			return err
		}
	}
	return nil
}
