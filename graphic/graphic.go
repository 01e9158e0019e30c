// Package graphic implements a reader for individual records of the Graphic
// blob file.
//
// The blob file is not self-describing: records are located only through
// the addresses stored in the GraphicInfo index (see package graphicinfo).
// A record is a 16-byte header starting with the "RD" tag, followed by the
// payload. The payload is returned as-is; interpreting it (palette lookup,
// decompression) is left to higher layers.
package graphic

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/cgtools/go-crossgate/cursor"
	"github.com/cgtools/go-crossgate/graphicinfo"
)

// HeaderSize is the size of the fixed part of a record, tag included.
const HeaderSize = 16

// Identifier is the tag every record starts with.
var Identifier = [2]byte{'R', 'D'}

// ErrInvalidIdentifier is returned when the bytes at a record's address are
// not the expected tag. Either the address is wrong or the blob is corrupt.
var ErrInvalidIdentifier = errors.New("invalid graphic identifier")

// Graphic is one decoded record of the blob file.
type Graphic struct {
	Identifier [2]byte
	Version    int8 // Passed through uninterpreted.
	Reserved   int8

	Width, Height uint32
	Length        uint32 // Size of Data in bytes.

	Data []int8
}

// New returns a record with a valid tag and Length matching data.
func New(version int8, width, height uint32, data []int8) *Graphic {
	return &Graphic{
		Identifier: Identifier,
		Version:    version,
		Width:      width,
		Height:     height,
		Length:     uint32(len(data)),
		Data:       data,
	}
}

// Bytes returns a copy of the payload as unsigned bytes.
func (g *Graphic) Bytes() []byte {
	b := make([]byte, len(g.Data))
	for i, v := range g.Data {
		b[i] = byte(v)
	}
	return b
}

// DecodeOne seeks r to info.Address and decodes the record found there.
//
// The position of r is not restored afterwards. Callers reading several
// records from a shared stream need no extra care since every call seeks
// first, but concurrent callers must not share r.
func DecodeOne(info graphicinfo.GraphicInfo, r io.ReadSeeker) (*Graphic, error) {
	if _, err := r.Seek(int64(info.Address), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "could not seek to graphic %d at 0x%08x", info.ID, info.Address)
	}
	g, err := DecodeUpcoming(r)
	if err != nil {
		return nil, errors.Wrapf(err, "graphic %d at 0x%08x", info.ID, info.Address)
	}
	return g, nil
}

// DecodeUpcoming decodes the record starting at the current position of r.
func DecodeUpcoming(r io.Reader) (*Graphic, error) {
	var g Graphic
	if _, err := io.ReadFull(r, g.Identifier[:]); err != nil {
		return nil, errors.Wrap(err, "could not read graphic identifier")
	}
	if g.Identifier != Identifier {
		return nil, errors.Wrapf(ErrInvalidIdentifier, "got % x, want % x", g.Identifier[:], Identifier[:])
	}

	hdr := make([]byte, HeaderSize-len(Identifier))
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, errors.Wrap(err, "could not read graphic header")
	}
	if err := g.unmarshalHeader(hdr); err != nil {
		return nil, err
	}

	// Let the buffer grow with the data actually present so that a bogus
	// length on a short file fails as a short read.
	buf := bytes.Buffer{}
	n, err := io.CopyN(&buf, r, int64(g.Length))
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "graphic payload could not be read")
	}
	if n != int64(g.Length) {
		return nil, errors.Wrapf(io.ErrUnexpectedEOF, "not all of the graphic payload could be read: read %d, want %d", n, g.Length)
	}

	g.Data = make([]int8, n)
	for i, v := range buf.Bytes() {
		g.Data[i] = int8(v)
	}
	return &g, nil
}

// unmarshalHeader fills in the fields that follow the identifier.
func (g *Graphic) unmarshalHeader(b []byte) error {
	c := cursor.New(b)
	var err error
	if g.Version, err = c.ReadI8(); err != nil {
		return errors.Wrap(err, "could not read graphic version")
	}
	if g.Reserved, err = c.ReadI8(); err != nil {
		return errors.Wrap(err, "could not read graphic reserved byte")
	}
	if g.Width, err = c.ReadU32(); err != nil {
		return errors.Wrap(err, "could not read graphic width")
	}
	if g.Height, err = c.ReadU32(); err != nil {
		return errors.Wrap(err, "could not read graphic height")
	}
	if g.Length, err = c.ReadU32(); err != nil {
		return errors.Wrap(err, "could not read graphic length")
	}
	return nil
}
