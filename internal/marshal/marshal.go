// Package marshal holds the fixed-width, big-endian primitives used by the
// event codec. Every operation checks the remaining capacity first and only
// advances the offset when the whole value fits.
package marshal

import (
	"encoding/binary"
	"errors"
)

const (
	// ShortStringMax is the longest string a 1-byte length prefix can carry.
	ShortStringMax = 0xff
	// LongStringMax is the longest string a 2-byte length prefix can carry.
	LongStringMax = 0xffff
)

var (
	// ErrTruncated is returned when a value does not fit in the remaining buffer.
	ErrTruncated = errors.New("truncated")
	// ErrTooLong is returned when a string exceeds its length prefix.
	ErrTooLong = errors.New("string too long")
)

// Writer appends wire values to a caller supplied buffer. It never writes past len(buf).
type Writer struct {
	buf []byte
	off int
}

func NewWriter(buf []byte, offset int) *Writer {
	return &Writer{buf: buf, off: offset}
}

// Offset returns the position of the next byte to be written.
func (w *Writer) Offset() int {
	return w.off
}

func (w *Writer) reserve(n int) ([]byte, error) {
	if n > len(w.buf)-w.off {
		return nil, ErrTruncated
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b, nil
}

func (w *Writer) Byte(v byte) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (w *Writer) Bool(v bool) error {
	if v {
		return w.Byte(1)
	}
	return w.Byte(0)
}

func (w *Writer) Uint16(v uint16) error {
	b, err := w.reserve(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

func (w *Writer) Int16(v int16) error {
	return w.Uint16(uint16(v))
}

func (w *Writer) Uint32(v uint32) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, v)
	return nil
}

func (w *Writer) Int32(v int32) error {
	return w.Uint32(uint32(v))
}

func (w *Writer) Uint64(v uint64) error {
	b, err := w.reserve(8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, v)
	return nil
}

func (w *Writer) Int64(v int64) error {
	return w.Uint64(uint64(v))
}

// IPAddr writes a 4-byte IPv4 address in network byte order.
func (w *Writer) IPAddr(ip [4]byte) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	copy(b, ip[:])
	return nil
}

// ShortString writes a 1-byte length followed by the raw bytes of s.
func (w *Writer) ShortString(s string) error {
	if len(s) > ShortStringMax {
		return ErrTooLong
	}
	b, err := w.reserve(1 + len(s))
	if err != nil {
		return err
	}
	b[0] = byte(len(s))
	copy(b[1:], s)
	return nil
}

// LongString writes a 2-byte length followed by the raw bytes of s.
func (w *Writer) LongString(s string) error {
	if len(s) > LongStringMax {
		return ErrTooLong
	}
	b, err := w.reserve(2 + len(s))
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, uint16(len(s)))
	copy(b[2:], s)
	return nil
}

// Reader consumes wire values from a buffer. A failed read leaves the offset untouched.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte, offset int) *Reader {
	return &Reader{buf: buf, off: offset}
}

// Offset returns the position of the next byte to be read.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) peek(n int) ([]byte, error) {
	if n > len(r.buf)-r.off {
		return nil, ErrTruncated
	}
	return r.buf[r.off : r.off+n], nil
}

func (r *Reader) take(n int) ([]byte, error) {
	b, err := r.peek(n)
	if err != nil {
		return nil, err
	}
	r.off += n
	return b, nil
}

func (r *Reader) Byte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Bool reads one byte; any non-zero value is true.
func (r *Reader) Bool() (bool, error) {
	b, err := r.Byte()
	return b != 0, err
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

func (r *Reader) IPAddr() ([4]byte, error) {
	var ip [4]byte
	b, err := r.take(4)
	if err != nil {
		return ip, err
	}
	copy(ip[:], b)
	return ip, nil
}

// ShortString reads a 1-byte length prefixed string into dst and returns the
// filled prefix of dst. dst must hold at least ShortStringMax bytes.
func (r *Reader) ShortString(dst []byte) ([]byte, error) {
	hdr, err := r.peek(1)
	if err != nil {
		return nil, err
	}
	return r.stringBody(dst, 1, int(hdr[0]))
}

// LongString reads a 2-byte length prefixed string into dst and returns the
// filled prefix of dst. dst must hold at least LongStringMax bytes.
func (r *Reader) LongString(dst []byte) ([]byte, error) {
	hdr, err := r.peek(2)
	if err != nil {
		return nil, err
	}
	return r.stringBody(dst, 2, int(binary.BigEndian.Uint16(hdr)))
}

func (r *Reader) stringBody(dst []byte, hdrLen, n int) ([]byte, error) {
	if n > len(dst) {
		return nil, ErrTooLong
	}
	b, err := r.peek(hdrLen + n)
	if err != nil {
		return nil, err
	}
	r.off += hdrLen + n
	return dst[:copy(dst, b[hdrLen:])], nil
}
