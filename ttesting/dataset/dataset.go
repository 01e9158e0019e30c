// Package dataset writes small but complete sets of data files for tests.
package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bradfitz/iter"

	"github.com/cgtools/go-crossgate/graphic"
	"github.com/cgtools/go-crossgate/graphicinfo"
	"github.com/cgtools/go-crossgate/paths"
)

// Palette is the content of the palette file written by Write.
var Palette = []byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00}

// Graphic returns the record Write stores for entry i. Record sizes differ
// so that addresses are not a simple multiple of the index.
func Graphic(i int) *graphic.Graphic {
	w, h := uint32(i+1), uint32(2)
	data := make([]int8, w*h)
	for j := range data {
		data[j] = int8(i*16 + j)
	}
	return graphic.New(1, w, h, data)
}

// Write creates n entries: an index, a blob with a few bytes of padding
// between records, and a palette. Entry i has ID i and map ID i%3.
func Write(t testing.TB, dir string, n int) (*paths.Paths, []graphicinfo.GraphicInfo) {
	t.Helper()

	blob := &bytes.Buffer{}
	var infos []graphicinfo.GraphicInfo
	for i := range iter.N(n) {
		blob.Write([]byte{0xEE, 0xEE})
		g := Graphic(i)
		infos = append(infos, graphicinfo.GraphicInfo{
			ID:      uint32(i),
			Address: uint32(blob.Len()),
			Length:  g.Length,
			OffsetX: -int32(i),
			Width:   g.Width,
			Height:  g.Height,
			MapID:   uint32(i % 3),
		})
		if err := graphic.Encode(blob, g); err != nil {
			t.Fatalf("encoding graphic %d: %s", i, err)
		}
	}

	index := &bytes.Buffer{}
	if err := graphicinfo.EncodeAll(index, infos); err != nil {
		t.Fatalf("encoding index: %s", err)
	}

	p := &paths.Paths{
		GraphicInfo: filepath.Join(dir, paths.GraphicInfoFile),
		Graphic:     filepath.Join(dir, paths.GraphicFile),
		Palette:     filepath.Join(dir, paths.PaletteFile),
	}
	for path, b := range map[string][]byte{
		p.GraphicInfo: index.Bytes(),
		p.Graphic:     blob.Bytes(),
		p.Palette:     Palette,
	} {
		if err := os.WriteFile(path, b, 0o644); err != nil {
			t.Fatalf("writing %q: %s", path, err)
		}
	}
	return p, infos
}
