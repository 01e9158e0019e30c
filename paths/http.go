package paths

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	cache     map[string][]byte
	cacheLock sync.Mutex
)

// openHTTP fetches the whole file at url and returns a seekable reader over
// it. Bodies are cached per URL for the lifetime of the process, since the
// blob file is typically reopened for every record read.
func openHTTP(url string) (ReadSeekCloser, error) {
	cacheLock.Lock()
	defer cacheLock.Unlock()

	if cache == nil {
		cache = make(map[string][]byte)
	}
	if b, ok := cache[url]; ok {
		glog.V(2).Infof("paths: returning cached body for %q", url)
		return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
	}

	glog.V(1).Infof("paths: getting http file %q", url)
	response, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get %q", url)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		e := os.ErrInvalid
		if response.StatusCode == http.StatusNotFound {
			e = os.ErrNotExist
		}
		return nil, errors.Wrapf(e, "%q: http response.StatusCode=%v, want 200", url, response.StatusCode)
	}

	// TODO(cgtools): Explore using ranged reads for the blob file.
	b, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "copying response to seekable buffer")
	}
	cache[url] = b
	return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
}

type bytesReaderWithDummyClose struct {
	*bytes.Reader
}

func (bytesReaderWithDummyClose) Close() error {
	return nil
}
