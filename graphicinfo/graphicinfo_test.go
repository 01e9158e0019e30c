package graphicinfo

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/bradfitz/iter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtools/go-crossgate/ttesting"
)

func sampleInfo(i int) GraphicInfo {
	return GraphicInfo{
		ID:        uint32(i),
		Address:   uint32(i * 438),
		Length:    424,
		OffsetX:   -32,
		OffsetY:   int32(-i),
		Width:     64,
		Height:    47,
		TileEast:  1,
		TileSouth: -1,
		Access:    int8(i % 2),
		Reserved:  [ReservedSize]int8{0, -1, 2, -3, 4},
		MapID:     uint32(i % 3),
	}
}

func encodeSamples(t *testing.T, n int) []byte {
	t.Helper()
	var infos []GraphicInfo
	for i := range iter.N(n) {
		infos = append(infos, sampleInfo(i))
	}
	buf := &bytes.Buffer{}
	require.NoError(t, EncodeAll(buf, infos))
	return buf.Bytes()
}

func TestDecodeFieldLayout(t *testing.T) {
	raw := []byte{
		0x07, 0x00, 0x00, 0x00, // id
		0x10, 0x32, 0x00, 0x00, // address
		0xA8, 0x01, 0x00, 0x00, // length 424
		0xF0, 0xFF, 0xFF, 0xFF, // offset x -16
		0x05, 0x00, 0x00, 0x00, // offset y 5
		0x40, 0x00, 0x00, 0x00, // width
		0x2F, 0x00, 0x00, 0x00, // height
		0x01,                         // tile east
		0xFF,                         // tile south
		0x00,                         // access
		0x01, 0x02, 0x03, 0x04, 0x80, // reserved
		0x0B, 0x00, 0x00, 0x00, // map id
	}
	require.Len(t, raw, RecordSize)

	gi, err := Decode(raw)
	require.NoError(t, err)

	ttesting.AssertEqualUint32(t, "id", gi.ID, 7)
	ttesting.AssertEqualUint32(t, "address", gi.Address, 0x3210)
	ttesting.AssertEqualUint32(t, "length", gi.Length, 424)
	ttesting.AssertEqualInt32(t, "offset x", gi.OffsetX, -16)
	ttesting.AssertEqualInt32(t, "offset y", gi.OffsetY, 5)
	ttesting.AssertEqualUint32(t, "width", gi.Width, 64)
	ttesting.AssertEqualUint32(t, "height", gi.Height, 47)
	ttesting.AssertEqualInt8(t, "tile east", gi.TileEast, 1)
	ttesting.AssertEqualInt8(t, "tile south", gi.TileSouth, -1)
	ttesting.AssertEqualInt8(t, "access", gi.Access, 0)
	assert.Equal(t, [ReservedSize]int8{1, 2, 3, 4, -128}, gi.Reserved)
	ttesting.AssertEqualUint32(t, "map id", gi.MapID, 11)
	assert.True(t, gi.HasMap())

	enc, err := gi.MarshalBinary()
	require.NoError(t, err)
	ttesting.AssertEqualBytes(t, "round trip", enc, raw)
}

func TestDecodeAll(t *testing.T) {
	for _, n := range []int{1, 2, 17} {
		raw := encodeSamples(t, n)
		infos, err := DecodeAll(bytes.NewReader(raw))
		require.NoError(t, err)
		ttesting.AssertEqualInt(t, "entry count", len(infos), len(raw)/RecordSize)
		for i, gi := range infos {
			assert.Equal(t, sampleInfo(i), gi)
		}

		again, err := DecodeAll(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, infos, again, "decoding must be idempotent")
	}
}

func TestDecodeAllEmpty(t *testing.T) {
	infos, err := DecodeAll(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestDecodeAllShortReads(t *testing.T) {
	raw := encodeSamples(t, 3)
	infos, err := DecodeAll(iotest.OneByteReader(bytes.NewReader(raw)))
	require.NoError(t, err)
	assert.Len(t, infos, 3)
}

func TestDecodeAllTruncated(t *testing.T) {
	tests := []struct {
		name  string
		extra int
		full  int
	}{
		{"one record and five stray bytes", 5, 1},
		{"one byte short", RecordSize - 1, 2},
		{"only a partial record", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append(encodeSamples(t, tt.full), make([]byte, tt.extra)...)
			infos, err := DecodeAll(bytes.NewReader(raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTruncatedRecord), "got %v", err)
			assert.Nil(t, infos)
		})
	}
}

func TestDecodeAllIOError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader(encodeSamples(t, 1)), iotest.ErrReader(boom))
	_, err := DecodeAll(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom), "got %v", err)
	assert.False(t, errors.Is(err, ErrTruncatedRecord))
}

func TestUnmarshalBinary(t *testing.T) {
	want := sampleInfo(4)
	raw, err := want.MarshalBinary()
	require.NoError(t, err)

	var got GraphicInfo
	require.NoError(t, got.UnmarshalBinary(raw))
	assert.Equal(t, want, got)

	err = got.UnmarshalBinary(raw[:RecordSize-1])
	assert.True(t, errors.Is(err, ErrTruncatedRecord), "got %v", err)

	err = got.UnmarshalBinary(append(raw, 0))
	assert.True(t, errors.Is(err, ErrRecordSize), "got %v", err)
	assert.False(t, errors.Is(err, ErrTruncatedRecord), "over-long input is not truncated: %v", err)
	assert.Equal(t, want, got, "failed unmarshal must not modify the receiver")
}

func TestEncodeAllRoundTrip(t *testing.T) {
	raw := encodeSamples(t, 5)
	infos, err := DecodeAll(bytes.NewReader(raw))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, EncodeAll(buf, infos))
	ttesting.AssertEqualBytes(t, "re-encoded index", buf.Bytes(), raw)
}

func FuzzDecodeAll(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, RecordSize))
	f.Add(make([]byte, RecordSize+5))
	f.Fuzz(func(t *testing.T, raw []byte) {
		infos, err := DecodeAll(bytes.NewReader(raw))
		if len(raw)%RecordSize != 0 {
			if !errors.Is(err, ErrTruncatedRecord) {
				t.Fatalf("len %d: got err %v, want ErrTruncatedRecord", len(raw), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("len %d: unexpected error %v", len(raw), err)
		}
		if len(infos) != len(raw)/RecordSize {
			t.Fatalf("got %d records, want %d", len(infos), len(raw)/RecordSize)
		}
		buf := &bytes.Buffer{}
		if err := EncodeAll(buf, infos); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf.Bytes(), raw) {
			t.Fatalf("round trip mismatch")
		}
	})
}
