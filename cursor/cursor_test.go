package cursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtools/go-crossgate/ttesting"
)

func TestReadFields(t *testing.T) {
	buf := []byte{
		0x78, 0x56, 0x34, 0x12, // u32
		0xFE, 0xFF, 0xFF, 0xFF, // i32 -2
		0x80,             // i8 -128
		0x01, 0xFF, 0x7F, // i8 array
	}
	c := New(buf)

	u, err := c.ReadU32()
	require.NoError(t, err)
	ttesting.AssertEqualUint32(t, "u32", u, 0x12345678)

	i, err := c.ReadI32()
	require.NoError(t, err)
	ttesting.AssertEqualInt32(t, "i32", i, -2)

	b, err := c.ReadI8()
	require.NoError(t, err)
	ttesting.AssertEqualInt8(t, "i8", b, -128)

	arr, err := c.ReadI8Array(3)
	require.NoError(t, err)
	assert.Equal(t, []int8{1, -1, 127}, arr)

	ttesting.AssertEqualInt(t, "remaining", c.Remaining(), 0)
}

func TestUnexpectedEnd(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(c *Cursor) error
	}{
		{"u32 on empty", nil, func(c *Cursor) error { _, err := c.ReadU32(); return err }},
		{"u32 on 3 bytes", []byte{1, 2, 3}, func(c *Cursor) error { _, err := c.ReadU32(); return err }},
		{"i32 on 1 byte", []byte{1}, func(c *Cursor) error { _, err := c.ReadI32(); return err }},
		{"i8 on empty", []byte{}, func(c *Cursor) error { _, err := c.ReadI8(); return err }},
		{"array too long", []byte{1, 2}, func(c *Cursor) error { _, err := c.ReadI8Array(5); return err }},
		{"negative array", []byte{1, 2}, func(c *Cursor) error { _, err := c.ReadI8Array(-1); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.buf)
			err := tt.read(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnexpectedEnd), "got %v", err)
			assert.Equal(t, len(tt.buf), c.Remaining(), "failed read must not advance")
		})
	}
}

func TestWriterMirrorsCursor(t *testing.T) {
	w := NewWriter(16)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-40)
	w.WriteI8(-1)
	w.WriteI8Array([]int8{-5, 5})
	w.WriteBytes([]byte{0xAA})
	ttesting.AssertEqualInt(t, "len", w.Len(), 4+4+1+2+1)

	c := New(w.Bytes())
	u, _ := c.ReadU32()
	i, _ := c.ReadI32()
	s, _ := c.ReadI8()
	arr, _ := c.ReadI8Array(2)
	rest, err := c.ReadU8()
	require.NoError(t, err)

	assert.Equal(t, uint32(0xDEADBEEF), u)
	assert.Equal(t, int32(-40), i)
	assert.Equal(t, int8(-1), s)
	assert.Equal(t, []int8{-5, 5}, arr)
	assert.Equal(t, uint8(0xAA), rest)
	ttesting.AssertEqualInt(t, "remaining", c.Remaining(), 0)
}
