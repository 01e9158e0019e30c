package catalog

import (
	"fmt"

	"github.com/cgtools/go-crossgate/graphic"
	"github.com/cgtools/go-crossgate/graphicinfo"
)

// Mismatch describes one field on which an index entry and its record
// disagree.
type Mismatch struct {
	Field       string
	Info, Graph uint32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: graphicinfo says %d, graphic says %d", m.Field, m.Info, m.Graph)
}

// Verify compares the length and dimensions an index entry declares against
// the record it points at. Decoders never do this; it is up to callers that
// care.
func Verify(info graphicinfo.GraphicInfo, g *graphic.Graphic) []Mismatch {
	var out []Mismatch
	check := func(field string, a, b uint32) {
		if a != b {
			out = append(out, Mismatch{Field: field, Info: a, Graph: b})
		}
	}
	check("length", info.Length, g.Length)
	check("width", info.Width, g.Width)
	check("height", info.Height, g.Height)
	return out
}
