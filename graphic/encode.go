package graphic

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/cgtools/go-crossgate/cursor"
)

// MarshalBinary encodes the record exactly as it is stored in the blob file.
// Length must match the size of Data.
func (g *Graphic) MarshalBinary() ([]byte, error) {
	if int64(len(g.Data)) != int64(g.Length) {
		return nil, errors.Errorf("graphic payload is %d bytes, header says %d", len(g.Data), g.Length)
	}
	w := cursor.NewWriter(HeaderSize + len(g.Data))
	w.WriteBytes(g.Identifier[:])
	w.WriteI8(g.Version)
	w.WriteI8(g.Reserved)
	w.WriteU32(g.Width)
	w.WriteU32(g.Height)
	w.WriteU32(g.Length)
	w.WriteI8Array(g.Data)
	return w.Bytes(), nil
}

// UnmarshalBinary decodes a record from b, which must hold exactly one
// record.
func (g *Graphic) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)
	d, err := DecodeUpcoming(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return errors.Errorf("%d trailing bytes after graphic record", r.Len())
	}
	*g = *d
	return nil
}

// Encode writes g to w.
func Encode(w io.Writer, g *Graphic) error {
	b, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "could not write graphic")
	}
	return nil
}
