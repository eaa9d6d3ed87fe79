package lwes_test

import (
	"errors"
	"net"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/atlassian/lwes"
)

type generated struct {
	name    string
	withEnc bool
	u16     uint16
	i16     int16
	u32     uint32
	i32     int32
	u64     uint64
	i64     int64
	b       bool
	ip      uint32
	s       string
	extra   map[string]uint32
}

func (g generated) event() (*lwes.Event, error) {
	e, err := lwes.NewNamedEvent(nil, g.name)
	if err != nil {
		return nil, err
	}
	// Attributes before the encoding, so encoding-first is exercised.
	for k, v := range g.extra {
		name := "x." + k
		if len(name) > lwes.ShortStringMax {
			continue
		}
		if _, err := e.SetUint32(name, v); err != nil {
			return nil, err
		}
	}
	if g.withEnc {
		if _, err := e.SetEncoding(lwes.EncodingUTF8); err != nil {
			return nil, err
		}
	}
	ip := net.IPv4(byte(g.ip>>24), byte(g.ip>>16), byte(g.ip>>8), byte(g.ip))
	for _, set := range []func() (int, error){
		func() (int, error) { return e.SetUint16("u16", g.u16) },
		func() (int, error) { return e.SetInt16("i16", g.i16) },
		func() (int, error) { return e.SetUint32("u32", g.u32) },
		func() (int, error) { return e.SetInt32("i32", g.i32) },
		func() (int, error) { return e.SetUint64("u64", g.u64) },
		func() (int, error) { return e.SetInt64("i64", g.i64) },
		func() (int, error) { return e.SetBool("b", g.b) },
		func() (int, error) { return e.SetIPAddr("ip", ip) },
		func() (int, error) { return e.SetString("s", g.s) },
	} {
		if _, err := set(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func genEvent() gopter.Gen {
	return gopter.CombineGens(
		gen.AlphaString(),
		gen.Bool(),
		gen.UInt16(),
		gen.Int16(),
		gen.UInt32(),
		gen.Int32(),
		gen.UInt64(),
		gen.Int64(),
		gen.Bool(),
		gen.UInt32(),
		gen.AnyString(),
		gen.MapOf(gen.Identifier(), gen.UInt32()),
	).Map(func(v []interface{}) generated {
		return generated{
			name:    v[0].(string),
			withEnc: v[1].(bool),
			u16:     v[2].(uint16),
			i16:     v[3].(int16),
			u32:     v[4].(uint32),
			i32:     v[5].(int32),
			u64:     v[6].(uint64),
			i64:     v[7].(int64),
			b:       v[8].(bool),
			ip:      v[9].(uint32),
			s:       v[10].(string),
			extra:   v[11].(map[string]uint32),
		}
	})
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(e)) equals e", prop.ForAll(
		func(g generated) bool {
			e, err := g.event()
			if err != nil {
				return false
			}
			data, err := e.MarshalBinary()
			if err != nil {
				return false
			}
			got, err := lwes.Decode(nil, data)
			if err != nil {
				return false
			}
			return e.Equal(got) && got.NumAttributes() == e.NumAttributes()
		},
		genEvent(),
	))

	properties.Property("encoding is the first attribute on the wire", prop.ForAll(
		func(g generated) bool {
			g.withEnc = true
			e, err := g.event()
			if err != nil {
				return false
			}
			data, err := e.MarshalBinary()
			if err != nil {
				return false
			}
			got, err := lwes.Decode(nil, data)
			if err != nil {
				return false
			}
			return got.Keys()[0] == lwes.EncodingAttribute
		},
		genEvent(),
	))

	properties.TestingRun(t)
}

func TestTruncationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every strict prefix fails as truncated", prop.ForAll(
		func(g generated) bool {
			e, err := g.event()
			if err != nil {
				return false
			}
			data, err := e.MarshalBinary()
			if err != nil {
				return false
			}
			tmp := lwes.NewDeserializeBuffers()
			for cut := 1; cut < len(data); cut++ {
				_, err := lwes.NewEvent(nil).FromBytes(data[:cut], 0, tmp)
				if !errors.Is(err, lwes.ErrTruncated) {
					return false
				}
			}
			return true
		},
		genEvent(),
	))

	properties.TestingRun(t)
}
