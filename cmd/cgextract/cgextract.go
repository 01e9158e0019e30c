// Command cgextract reads the GraphicInfo index, the Graphic blob and the
// palette, and prints what it finds.
//
//	cgextract GraphicInfo.bin Graphic.bin Palette.cgp
//	cgextract --graphic_info_path=... --graphic_path=... --palette_path=... -id=12 -dump
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"github.com/cgtools/go-crossgate/hexprint"
	"github.com/cgtools/go-crossgate/paths"
)

var (
	graphicID = flag.Int("id", -1, "ID of the graphic to decode and print; -1 prints only the index summary")
	dump      = flag.Bool("dump", false, "whether to hex dump the payload of the graphic selected with -id")
	list      = flag.Bool("list", false, "whether to print every index entry")
	verify    = flag.Bool("verify", false, "whether to decode every graphic and report index/record mismatches")
	workers   = flag.Int("workers", runtime.NumCPU(), "number of concurrent readers for -verify")
	col       = flag.Bool("col", true, "whether to shade hex dump cells when printing to a terminal")
	ascii     = flag.Bool("ascii", true, "whether to add a printable character column to hex dumps")
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Fatal Error: %v\n", err)
	fmt.Fprintln(os.Stderr, paths.Usage)
	os.Exit(1)
}

func main() {
	p := paths.SetupFlags(flag.CommandLine)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() > 0 {
		var err error
		if p, err = paths.New(append([]string{os.Args[0]}, flag.Args()...)); err != nil {
			fatal(err)
		}
	}
	if err := p.Validate(); err != nil {
		fatal(err)
	}

	fd := int(os.Stdout.Fd())
	tty := hexprint.IsTerminal(fd)
	o := options{
		id:      *graphicID,
		dump:    *dump,
		list:    *list,
		verify:  *verify,
		workers: *workers,
		hex: hexprint.Options{
			Columns: hexprint.DefaultColumns,
			Color:   *col && tty,
			ASCII:   *ascii,
		},
	}
	if tty {
		o.hex.Columns = hexprint.Columns(fd, *ascii)
	}

	if err := run(os.Stdout, p, o); err != nil {
		glog.Errorf("cgextract: %v", err)
		os.Exit(1)
	}
}
