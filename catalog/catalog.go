// Package catalog ties the data files together: it loads the GraphicInfo
// index once, keeps it in memory, and decodes Graphic records on demand.
package catalog

import (
	_ "crypto/sha256" // digest.Canonical

	"github.com/golang/glog"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"

	"github.com/cgtools/go-crossgate/graphic"
	"github.com/cgtools/go-crossgate/graphicinfo"
	"github.com/cgtools/go-crossgate/palette"
	"github.com/cgtools/go-crossgate/paths"
)

// ErrNotFound is returned when no index entry has the requested ID.
var ErrNotFound = errors.New("no such graphic")

type Catalog struct {
	blobPath string
	entries  []graphicinfo.GraphicInfo
	byID     map[uint32]int
	byMapID  map[uint32][]int
	palette  *palette.Palette
}

// Load validates p, decodes the whole index, and reads the palette. The blob
// file is only checked for presence; records are read later, per call.
func Load(p *paths.Paths) (*Catalog, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f, err := paths.NoFindOpen(p.GraphicInfo)
	if err != nil {
		return nil, errors.Wrap(err, "opening graphicinfo file")
	}
	entries, err := graphicinfo.DecodeAll(f)
	f.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", p.GraphicInfo)
	}

	f, err = paths.NoFindOpen(p.Palette)
	if err != nil {
		return nil, errors.Wrap(err, "opening palette file")
	}
	pal, err := palette.Read(f)
	f.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", p.Palette)
	}

	f, err = paths.NoFindOpen(p.Graphic)
	if err != nil {
		return nil, errors.Wrap(err, "opening graphic file")
	}
	f.Close()

	c := New(entries, p.Graphic)
	c.palette = pal
	glog.Infof("catalog: loaded %d entries from %q, palette of %d bytes", len(entries), p.GraphicInfo, pal.Len())
	return c, nil
}

// New builds a catalog over already decoded entries, reading records from
// the blob file at blobPath.
func New(entries []graphicinfo.GraphicInfo, blobPath string) *Catalog {
	c := &Catalog{
		blobPath: blobPath,
		entries:  entries,
		byID:     make(map[uint32]int, len(entries)),
		byMapID:  make(map[uint32][]int),
	}
	for i, e := range entries {
		if uint32(i) != e.ID {
			glog.V(2).Infof("catalog: entry %d has id %d", i, e.ID)
		}
		if prev, ok := c.byID[e.ID]; ok {
			glog.Warningf("catalog: duplicate id %d at entries %d and %d; keeping the first", e.ID, prev, i)
		} else {
			c.byID[e.ID] = i
		}
		if e.HasMap() {
			c.byMapID[e.MapID] = append(c.byMapID[e.MapID], i)
		}
	}
	return c
}

// Len returns the number of index entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the index entries in file order. The returned slice is a
// copy.
func (c *Catalog) Entries() []graphicinfo.GraphicInfo {
	return append([]graphicinfo.GraphicInfo(nil), c.entries...)
}

// ByID returns the first entry with the passed ID.
func (c *Catalog) ByID(id uint32) (graphicinfo.GraphicInfo, bool) {
	i, ok := c.byID[id]
	if !ok {
		return graphicinfo.GraphicInfo{}, false
	}
	return c.entries[i], true
}

// ByMapID returns the entries associated with the passed map, in file order.
// Map ID 0 means "no map" and always yields nothing.
func (c *Catalog) ByMapID(mapID uint32) []graphicinfo.GraphicInfo {
	var out []graphicinfo.GraphicInfo
	for _, i := range c.byMapID[mapID] {
		out = append(out, c.entries[i])
	}
	return out
}

// Palette returns the palette loaded with the catalog, or nil.
func (c *Catalog) Palette() *palette.Palette {
	return c.palette
}

// Graphic decodes the record for the entry with the passed ID. Each call
// opens its own handle on the blob file, so it is safe for concurrent use.
func (c *Catalog) Graphic(id uint32) (*graphic.Graphic, error) {
	info, ok := c.ByID(id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	return c.GraphicFor(info)
}

// GraphicFor decodes the record the passed entry points at.
func (c *Catalog) GraphicFor(info graphicinfo.GraphicInfo) (*graphic.Graphic, error) {
	f, err := paths.NoFindOpen(c.blobPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening graphic file")
	}
	defer f.Close()
	return graphic.DecodeOne(info, f)
}

// Digest returns the content digest of a record's payload.
func Digest(g *graphic.Graphic) digest.Digest {
	return digest.FromBytes(g.Bytes())
}
