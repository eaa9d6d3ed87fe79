package lwes

import (
	"encoding/binary"
	"net"
)

// attribute holds one typed value. Integers and booleans live in num as their
// raw bit pattern, IPv4 addresses as a big-endian uint32, strings in str.
type attribute struct {
	typ Type
	num uint64
	str string
}

func (a attribute) ip() [4]byte {
	var ip [4]byte
	binary.BigEndian.PutUint32(ip[:], uint32(a.num))
	return ip
}

func ipAttribute(ip [4]byte) attribute {
	return attribute{typ: TypeIPAddr, num: uint64(binary.BigEndian.Uint32(ip[:]))}
}

// value returns the attribute as the natural Go type for its tag.
func (a attribute) value() interface{} {
	switch a.typ {
	case TypeUint16:
		return uint16(a.num)
	case TypeInt16:
		return int16(a.num)
	case TypeUint32:
		return uint32(a.num)
	case TypeInt32:
		return int32(a.num)
	case TypeUint64:
		return a.num
	case TypeInt64:
		return int64(a.num)
	case TypeBoolean:
		return a.num != 0
	case TypeIPAddr:
		ip := a.ip()
		return net.IPv4(ip[0], ip[1], ip[2], ip[3]).To4()
	case TypeString:
		return a.str
	default:
		return nil
	}
}

type entry struct {
	name string
	attr attribute
}

// attributes is the name keyed store of an event. Enumeration follows
// insertion order, so the same store state always serializes the same way.
type attributes struct {
	index   map[string]int
	entries []entry
}

func newAttributes() attributes {
	return attributes{index: make(map[string]int)}
}

func (s *attributes) len() int {
	return len(s.entries)
}

// put inserts a under name. It reports false, leaving the store untouched, if name is taken.
func (s *attributes) put(name string, a attribute) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, entry{name: name, attr: a})
	return true
}

func (s *attributes) get(name string) (attribute, bool) {
	i, ok := s.index[name]
	if !ok {
		return attribute{}, false
	}
	return s.entries[i].attr, true
}

// each calls fn for every entry in store order until fn returns false.
func (s *attributes) each(fn func(name string, a attribute) bool) {
	for _, e := range s.entries {
		if !fn(e.name, e.attr) {
			return
		}
	}
}

// reset drops every entry but keeps the allocated capacity.
func (s *attributes) reset() {
	for i := range s.entries {
		s.entries[i] = entry{}
	}
	s.entries = s.entries[:0]
	for k := range s.index {
		delete(s.index, k)
	}
}
