package catalog

import (
	"context"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cgtools/go-crossgate/graphic"
	"github.com/cgtools/go-crossgate/graphicinfo"
	"github.com/cgtools/go-crossgate/paths"
)

// ExtractFunc receives each decoded record. It may be called from several
// goroutines at once.
type ExtractFunc func(info graphicinfo.GraphicInfo, g *graphic.Graphic) error

// ExtractAll decodes the record of every entry and passes it to fn, using up
// to workers goroutines. Every worker reads through its own blob handle.
//
// The first error, from decoding or from fn, stops the extraction and is
// returned. Cancelling ctx stops it as well.
func (c *Catalog) ExtractAll(ctx context.Context, workers int, fn ExtractFunc) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(c.entries) {
		workers = len(c.entries)
	}

	g, ctx := errgroup.WithContext(ctx)
	work := make(chan int)

	g.Go(func() error {
		defer close(work)
		for i := range c.entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case work <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := range iter.N(workers) {
		g.Go(func() error {
			f, err := paths.NoFindOpen(c.blobPath)
			if err != nil {
				return errors.Wrap(err, "opening graphic file")
			}
			defer f.Close()

			n := 0
			for i := range work {
				info := c.entries[i]
				rec, err := graphic.DecodeOne(info, f)
				if err != nil {
					return errors.Wrapf(err, "extracting entry %d", i)
				}
				if err := fn(info, rec); err != nil {
					return errors.Wrapf(err, "handling entry %d", i)
				}
				n++
			}
			glog.V(1).Infof("catalog: worker %d extracted %d records", w, n)
			return nil
		})
	}

	return g.Wait()
}
