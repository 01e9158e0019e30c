package graphicinfo

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cgtools/go-crossgate/cursor"
)

// MarshalBinary encodes the record into its 40-byte on-disk form, reserved
// bytes included.
func (gi GraphicInfo) MarshalBinary() ([]byte, error) {
	w := cursor.NewWriter(RecordSize)
	w.WriteU32(gi.ID)
	w.WriteU32(gi.Address)
	w.WriteU32(gi.Length)
	w.WriteI32(gi.OffsetX)
	w.WriteI32(gi.OffsetY)
	w.WriteU32(gi.Width)
	w.WriteU32(gi.Height)
	w.WriteI8(gi.TileEast)
	w.WriteI8(gi.TileSouth)
	w.WriteI8(gi.Access)
	w.WriteI8Array(gi.Reserved[:])
	w.WriteU32(gi.MapID)
	return w.Bytes(), nil
}

// EncodeAll writes infos to w as an index file.
func EncodeAll(w io.Writer, infos []GraphicInfo) error {
	for i, gi := range infos {
		b, err := gi.MarshalBinary()
		if err != nil {
			return errors.Wrapf(err, "encoding graphicinfo record %d", i)
		}
		if _, err := w.Write(b); err != nil {
			return errors.Wrapf(err, "writing graphicinfo record %d", i)
		}
	}
	return nil
}
