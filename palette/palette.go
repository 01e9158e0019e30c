// Package palette holds the contents of a palette file.
//
// The palette format is not interpreted; the bytes are kept verbatim so that
// a future decoder can be layered on top without changing how palettes are
// loaded.
package palette

import (
	"io"

	"github.com/pkg/errors"
)

type Palette struct {
	Raw []byte
}

// Read consumes r to the end and returns its contents as a palette.
func Read(r io.Reader) (*Palette, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read palette")
	}
	return &Palette{Raw: b}, nil
}

// Len returns the palette size in bytes.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Raw)
}
