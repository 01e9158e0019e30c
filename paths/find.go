// Package paths locates and opens the data files: the GraphicInfo index, the
// Graphic blob and the palette.
//
// Files may live on the local filesystem or behind an http(s) URL, and may be
// zstd-compressed. Whatever the source, they are handed out as seekable
// streams since the blob file is read by address.
package paths

import (
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ReadSeekCloser is what NoFindOpen returns.
type ReadSeekCloser interface {
	io.ReadCloser
	io.Seeker
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at. A zstd-compressed variant
// ("Graphic.bin.zst") is accepted in place of the plain file.
//
// For example, for "Graphic.bin" it may return "datafiles/Graphic.bin.zst".
//
// If the file cannot be found, an empty string is returned.
func Find(fileName string) string {
	for _, path := range getPossiblePaths(fileName) {
		for _, candidate := range []string{path, path + zstdSuffix} {
			if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
				glog.Infof("paths.Find(%q)=%s", fileName, candidate)
				return candidate
			}
		}
	}
	glog.V(1).Infof("paths.Find(%q): not found", fileName)
	return ""
}

// NoFindOpen opens the file at exactly the passed path or URL, without
// searching. Compressed files are decompressed into memory.
func NoFindOpen(path string) (ReadSeekCloser, error) {
	var (
		f   ReadSeekCloser
		err error
	)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		f, err = openHTTP(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "paths.NoFindOpen(%q)", path)
	}
	return maybeDecompress(path, f)
}
