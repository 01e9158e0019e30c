package paths

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const zstdSuffix = ".zst"

// zstdKey identifies one version of a compressed file on disk.
type zstdKey struct {
	path    string
	size    int64
	modTime time.Time
}

var (
	zstdCache     map[zstdKey][]byte
	zstdCacheLock sync.Mutex
)

// maybeDecompress returns f unchanged unless path carries the zstd suffix,
// in which case f is closed and a reader over its decompressed contents is
// returned.
//
// Plain data files are never sniffed: a valid index or blob may begin with
// any byte sequence, the zstd frame magic included.
//
// Decompressed contents are cached per path, size and modification time, so
// reopening an unchanged file for every record read costs no decompression.
func maybeDecompress(path string, f ReadSeekCloser) (ReadSeekCloser, error) {
	if !strings.HasSuffix(path, zstdSuffix) {
		return f, nil
	}
	defer f.Close()

	key := zstdKey{path: path, size: -1}
	if file, ok := f.(*os.File); ok {
		if st, err := file.Stat(); err == nil {
			key.size, key.modTime = st.Size(), st.ModTime()
		}
	}

	zstdCacheLock.Lock()
	defer zstdCacheLock.Unlock()

	if zstdCache == nil {
		zstdCache = make(map[zstdKey][]byte)
	}
	if b, ok := zstdCache[key]; ok {
		glog.V(2).Infof("paths: returning cached decompression of %q", path)
		return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
	}

	dec, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "could not start zstd decoder for %q", path)
	}
	defer dec.Close()

	b, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decompress %q", path)
	}
	glog.V(1).Infof("paths: decompressed %q to %d bytes", path, len(b))

	// Drop stale versions of the same file.
	for k := range zstdCache {
		if k.path == path {
			delete(zstdCache, k)
		}
	}
	zstdCache[key] = b
	return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
}
