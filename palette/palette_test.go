package palette

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/cgtools/go-crossgate/ttesting"
)

func TestRead(t *testing.T) {
	raw := []byte{0x00, 0x10, 0xFF, 0x7F}
	p, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to read palette: %s", err)
	}
	ttesting.AssertEqualBytes(t, "raw bytes", p.Raw, raw)
	ttesting.AssertEqualInt(t, "len", p.Len(), 4)
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("got %v; want %v", err, boom)
	}
}

func TestNilLen(t *testing.T) {
	var p *Palette
	ttesting.AssertEqualInt(t, "nil palette", p.Len(), 0)
}
