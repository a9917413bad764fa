// Package wire reads the fixed-width little-endian primitives that make up
// the compiled terminal-capability format: signed and unsigned 16-bit
// shorts, signed 32-bit integers, single bytes, and fixed-length byte runs.
//
// Every read is bounded by the caller-supplied length; none ever trusts a
// header-declared count enough to allocate it up front.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Reader pulls primitive values off an io.Reader, little-endian throughout.
type Reader struct {
	r   io.Reader
	buf [4]byte
	pos int64
}

// NewReader wraps r for primitive reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Pos reports the number of bytes consumed so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

func (r *Reader) fill(n int) error {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return wrapIO(err)
	}
	r.pos += int64(n)
	return nil
}

// ReadByte consumes one byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadI16 consumes two bytes as a little-endian signed short.
func (r *Reader) ReadI16() (int16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(r.buf[:2])), nil
}

// ReadU16 consumes two bytes as a little-endian unsigned short.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}

// ReadI32 consumes four bytes as a little-endian signed integer.
func (r *Reader) ReadI32() (int32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.buf[:4])), nil
}

// ReadExact consumes exactly n bytes. The returned buffer grows with the
// bytes actually read rather than being allocated at size n up front, so a
// large declared length backed by a short input costs only what was read.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r.r, int64(n)); err != nil {
		return nil, wrapIO(err)
	}
	r.pos += int64(n)
	return buf.Bytes(), nil
}

// ReadNonNegI16 reads a signed short where -1 conventionally means "this
// section is absent"; the caller is expected to treat the resulting 0 as an
// empty section. Any other negative value is a malformed header.
func (r *Reader) ReadNonNegI16() (uint16, error) {
	n, err := r.ReadI16()
	if err != nil {
		return 0, err
	}
	switch {
	case n >= 0:
		return uint16(n), nil
	case n == -1:
		return 0, nil
	default:
		return 0, fmt.Errorf("wire: negative header field %d: %w", n, ErrInvalidNames)
	}
}

// ErrInvalidNames marks a header field that is negative but not the -1
// "absent" sentinel.
var ErrInvalidNames = fmt.Errorf("value must be >= -1")

func wrapIO(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("wire: short read: %w", io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("wire: read failed: %w", err)
}
