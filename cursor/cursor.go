// Package cursor reads and writes fixed-width little-endian fields over an
// in-memory byte slice.
//
// Both the GraphicInfo index decoder and the Graphic blob decoder materialize
// the bytes of a record first and then pick the fields out of it with a
// Cursor. A Cursor never touches a file, so every failure it reports is fully
// determined by the buffer it was given.
package cursor

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrUnexpectedEnd is returned when a read would go past the end of the
// buffer. The position of the cursor is left unchanged in that case.
var ErrUnexpectedEnd = errors.New("unexpected end of buffer")

// Cursor is a sequential reader over a byte slice.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a cursor positioned at the start of b. The slice is not copied.
func New(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Remaining returns the number of bytes left to consume.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// take returns the next n bytes and advances past them.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, errors.Wrapf(ErrUnexpectedEnd, "reading %d bytes at offset %d of %d", n, c.pos, len(c.buf))
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadI8Array consumes n bytes and returns them as signed bytes.
func (c *Cursor) ReadI8Array(n int) ([]int8, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]int8, n)
	for i, v := range b {
		out[i] = int8(v)
	}
	return out, nil
}
