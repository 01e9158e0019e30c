// Package hexprint prints raw record payloads on a terminal.
//
// Payload bytes are not interpreted; with color enabled each byte is shaded
// by its value so that runs and structure are easier to spot.
package hexprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/gookit/color"
	"golang.org/x/crypto/ssh/terminal"
)

// DefaultColumns is the row width used when the terminal width is unknown.
const DefaultColumns = 16

// Options control how Dump lays out its output.
type Options struct {
	Columns int  // Bytes per row; DefaultColumns if zero.
	Color   bool // Shade cells with 24-bit background colors.
	ASCII   bool // Append a printable-character column.
}

// shade renders one byte as a hex cell.
func shade(b byte, useColor bool) string {
	cell := fmt.Sprintf("%02x", b)
	if !useColor {
		return cell
	}
	// Dark bytes get light text so the digits stay readable.
	fg := uint8(0)
	if b < 0x80 {
		fg = 0xFF
	}
	return color.RGB(b, b, b, true).Sprint(color.RGB(fg, fg, fg).Sprint(cell))
}

func printable(b byte) byte {
	if b < 0x20 || b > 0x7E {
		return '.'
	}
	return b
}

// Dump writes b as rows of hex cells, each prefixed by its offset.
func Dump(w io.Writer, b []byte, o Options) error {
	cols := o.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	rows := (len(b) + cols - 1) / cols
	sb := &strings.Builder{}
	for row := range iter.N(rows) {
		sb.Reset()
		start := row * cols
		end := start + cols
		if end > len(b) {
			end = len(b)
		}
		fmt.Fprintf(sb, "%08x ", start)
		for i := start; i < end; i++ {
			sb.WriteByte(' ')
			sb.WriteString(shade(b[i], o.Color))
		}
		if o.ASCII {
			sb.WriteString(strings.Repeat("   ", cols-(end-start)))
			sb.WriteString("  |")
			for i := start; i < end; i++ {
				sb.WriteByte(printable(b[i]))
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return terminal.IsTerminal(fd)
}

// Columns picks the number of bytes per row that fits the terminal on fd,
// rounded down to a multiple of 8. It falls back to DefaultColumns.
func Columns(fd int, ascii bool) int {
	w, _, err := terminal.GetSize(fd)
	if err != nil {
		return DefaultColumns
	}
	return columnsForWidth(w, ascii)
}

func columnsForWidth(width int, ascii bool) int {
	// "%08x " prefix, then 3 characters per byte, plus "  |" + 1 per byte + "|".
	avail := width - 9
	per := 3
	if ascii {
		avail -= 4
		per = 4
	}
	cols := avail / per / 8 * 8
	if cols < 8 {
		return DefaultColumns
	}
	return cols
}
