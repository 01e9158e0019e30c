// Package graphicinfo implements a reader for the GraphicInfo index file.
//
// The index is a plain concatenation of fixed-size 40-byte records with no
// header, footer or count; the end of the file is the only terminator. Each
// record describes one sprite and points into the Graphic blob file, which
// is decoded by package graphic.
package graphicinfo

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cgtools/go-crossgate/cursor"
)

// RecordSize is the size in bytes of one encoded GraphicInfo.
const RecordSize = 40

// ReservedSize is the number of uninterpreted bytes near the end of a record.
const ReservedSize = 5

// ErrTruncatedRecord is returned by DecodeAll when the index ends in the
// middle of a record.
var ErrTruncatedRecord = errors.New("truncated graphicinfo record")

// ErrRecordSize is returned by UnmarshalBinary when given more than one
// record's worth of bytes.
var ErrRecordSize = errors.New("graphicinfo record has wrong size")

// GraphicInfo is one entry of the index file.
type GraphicInfo struct {
	ID      uint32 // Expected to match the position in the index; not enforced.
	Address uint32 // Offset of the Graphic record in the blob file.
	Length  uint32 // Payload length; mirrored in the Graphic record.

	OffsetX, OffsetY int32
	Width, Height    uint32

	TileEast, TileSouth int8
	Access              int8
	Reserved            [ReservedSize]int8

	MapID uint32 // 0 means no map.
}

// HasMap reports whether the entry is associated with a map.
func (gi GraphicInfo) HasMap() bool {
	return gi.MapID != 0
}

// Decode decodes a single record from b, which must hold at least
// RecordSize bytes. Bytes beyond the first record are ignored.
func Decode(b []byte) (GraphicInfo, error) {
	var gi GraphicInfo
	c := cursor.New(b)

	var err error
	u32 := func(dst *uint32) {
		if err == nil {
			*dst, err = c.ReadU32()
		}
	}
	i32 := func(dst *int32) {
		if err == nil {
			*dst, err = c.ReadI32()
		}
	}
	i8 := func(dst *int8) {
		if err == nil {
			*dst, err = c.ReadI8()
		}
	}

	u32(&gi.ID)
	u32(&gi.Address)
	u32(&gi.Length)
	i32(&gi.OffsetX)
	i32(&gi.OffsetY)
	u32(&gi.Width)
	u32(&gi.Height)
	i8(&gi.TileEast)
	i8(&gi.TileSouth)
	i8(&gi.Access)
	if err == nil {
		var reserved []int8
		if reserved, err = c.ReadI8Array(ReservedSize); err == nil {
			copy(gi.Reserved[:], reserved)
		}
	}
	u32(&gi.MapID)

	if err != nil {
		return GraphicInfo{}, errors.Wrap(err, "could not decode graphicinfo record")
	}
	return gi, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (gi *GraphicInfo) UnmarshalBinary(b []byte) error {
	switch {
	case len(b) < RecordSize:
		return errors.Wrapf(ErrTruncatedRecord, "got %d bytes, want %d", len(b), RecordSize)
	case len(b) > RecordSize:
		return errors.Wrapf(ErrRecordSize, "got %d bytes, want %d", len(b), RecordSize)
	}
	d, err := Decode(b)
	if err != nil {
		return err
	}
	*gi = d
	return nil
}

// DecodeAll reads the whole index from r and returns its records in file
// order.
//
// A clean end of stream on a record boundary ends decoding. A stream that
// ends part way through a record fails with ErrTruncatedRecord; any other
// read error is returned wrapped. On failure no records are returned.
func DecodeAll(r io.Reader) ([]GraphicInfo, error) {
	var infos []GraphicInfo
	buf := make([]byte, RecordSize)
	for {
		n, err := io.ReadFull(r, buf)
		switch {
		case err == io.EOF:
			return infos, nil
		case err == io.ErrUnexpectedEOF:
			return nil, errors.Wrapf(ErrTruncatedRecord, "record %d: got %d bytes, want %d", len(infos), n, RecordSize)
		case err != nil:
			return nil, errors.Wrapf(err, "could not read graphicinfo record %d", len(infos))
		}

		gi, err := Decode(buf)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", len(infos))
		}
		infos = append(infos, gi)
	}
}
