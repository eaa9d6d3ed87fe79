package lwes

import (
	"fmt"
	"net"
	"strconv"
)

// ParseHexUint64 parses s as base 16 with an optional 0x or 0X prefix. The
// whole string must be consumed; no sign or surrounding whitespace is accepted.
func ParseHexUint64(s string) (uint64, error) {
	digits := s
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("hex %q: %w", s, ErrNumericParse)
	}
	return v, nil
}

// ParseHexInt64 parses s as an unsigned 64-bit hex value and reinterprets the
// bits, so "ffffffffffffffff" is -1.
func ParseHexInt64(s string) (int64, error) {
	v, err := ParseHexUint64(s)
	return int64(v), err
}

func (e *Event) SetUint64FromHex(name, hex string) (int, error) {
	if e == nil || name == "" {
		return 0, ErrInvalidArgument
	}
	v, err := ParseHexUint64(hex)
	if err != nil {
		return 0, err
	}
	return e.SetUint64(name, v)
}

func (e *Event) SetInt64FromHex(name, hex string) (int, error) {
	if e == nil || name == "" {
		return 0, ErrInvalidArgument
	}
	v, err := ParseHexInt64(hex)
	if err != nil {
		return 0, err
	}
	return e.SetInt64(name, v)
}

// SetIPAddrFromString parses a dotted-decimal IPv4 address and stores it.
func (e *Event) SetIPAddrFromString(name, addr string) (int, error) {
	if e == nil || name == "" {
		return 0, ErrInvalidArgument
	}
	ip := net.ParseIP(addr).To4()
	if ip == nil {
		return 0, fmt.Errorf("ip address %q: %w", addr, ErrNumericParse)
	}
	return e.SetIPAddr(name, ip)
}
