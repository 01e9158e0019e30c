package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/pkg/errors"

	"github.com/cgtools/go-crossgate/catalog"
	"github.com/cgtools/go-crossgate/graphic"
	"github.com/cgtools/go-crossgate/graphicinfo"
	"github.com/cgtools/go-crossgate/hexprint"
	"github.com/cgtools/go-crossgate/paths"
)

type options struct {
	id      int
	dump    bool
	list    bool
	verify  bool
	workers int
	hex     hexprint.Options
}

func printInfo(w io.Writer, gi graphicinfo.GraphicInfo) {
	fmt.Fprintf(w, "#%d addr=0x%08x len=%d offset=(%d,%d) size=%dx%d tile=(%d,%d) access=%d reserved=%v map=%d\n",
		gi.ID, gi.Address, gi.Length, gi.OffsetX, gi.OffsetY, gi.Width, gi.Height,
		gi.TileEast, gi.TileSouth, gi.Access, gi.Reserved, gi.MapID)
}

func run(w io.Writer, p *paths.Paths, o options) error {
	if int64(o.id) > math.MaxUint32 {
		return errors.Errorf("id %d out of range, must be at most %d", o.id, uint32(math.MaxUint32))
	}

	fmt.Fprintf(w, "%+v\n", *p)
	cat, err := catalog.Load(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d entries\n", p.GraphicInfo, cat.Len())
	fmt.Fprintf(w, "%s: %d bytes\n", p.Palette, cat.Palette().Len())

	if o.list {
		for _, gi := range cat.Entries() {
			printInfo(w, gi)
		}
	}

	if o.id >= 0 {
		if err := printGraphic(w, cat, uint32(o.id), o); err != nil {
			return err
		}
	}

	if o.verify {
		return verifyAll(w, cat, o.workers)
	}
	return nil
}

func printGraphic(w io.Writer, cat *catalog.Catalog, id uint32, o options) error {
	info, ok := cat.ByID(id)
	if !ok {
		return errors.Wrapf(catalog.ErrNotFound, "id %d", id)
	}
	printInfo(w, info)
	g, err := cat.GraphicFor(info)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s version=%d size=%dx%d len=%d digest=%s\n",
		g.Identifier[:], g.Version, g.Width, g.Height, g.Length, catalog.Digest(g))
	for _, m := range catalog.Verify(info, g) {
		fmt.Fprintf(w, "mismatch: %s\n", m)
	}
	if o.dump {
		return hexprint.Dump(w, g.Bytes(), o.hex)
	}
	return nil
}

func verifyAll(w io.Writer, cat *catalog.Catalog, workers int) error {
	var (
		mu  sync.Mutex
		bad int
	)
	err := cat.ExtractAll(context.Background(), workers, func(info graphicinfo.GraphicInfo, g *graphic.Graphic) error {
		ms := catalog.Verify(info, g)
		if len(ms) == 0 {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		bad++
		for _, m := range ms {
			fmt.Fprintf(w, "#%d: %s\n", info.ID, m)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "verified %d entries, %d with mismatches\n", cat.Len(), bad)
	return nil
}
