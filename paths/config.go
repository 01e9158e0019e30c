package paths

import (
	"flag"

	"github.com/pkg/errors"
)

// Default file names of the three data files.
const (
	GraphicInfoFile = "GraphicInfo.bin"
	GraphicFile     = "Graphic.bin"
	PaletteFile     = "Palette.cgp"
)

// Flag names registered by SetupFlags.
const (
	FlagGraphicInfoPath = "graphic_info_path"
	FlagGraphicPath     = "graphic_path"
	FlagPalettePath     = "palette_path"
)

// Usage is the one-line usage for binaries taking the three paths as
// positional arguments.
const Usage = "Usage: ./cgextract [GraphicInfo.bin] [Graphic.bin] [Palette.cgp]"

// ErrNotEnoughParameters is returned by New when the argument count is wrong.
var ErrNotEnoughParameters = errors.New("not enough parameters.")

// Paths holds the locations of the data files. All three are required.
type Paths struct {
	GraphicInfo string
	Graphic     string
	Palette     string
}

// New builds Paths from a full argument vector, program name included, as
// in os.Args. Exactly three arguments must follow the program name.
func New(args []string) (*Paths, error) {
	if len(args) != 4 {
		return nil, ErrNotEnoughParameters
	}
	return &Paths{
		GraphicInfo: args[1],
		Graphic:     args[2],
		Palette:     args[3],
	}, nil
}

// Validate checks that every path is set.
func (p *Paths) Validate() error {
	switch {
	case p.GraphicInfo == "":
		return errors.Errorf("missing path to %s", GraphicInfoFile)
	case p.Graphic == "":
		return errors.Errorf("missing path to %s", GraphicFile)
	case p.Palette == "":
		return errors.Errorf("missing path to %s", PaletteFile)
	}
	return nil
}

// SetupFlags registers --graphic_info_path, --graphic_path and
// --palette_path on fs, defaulting to whatever Find locates, and returns the
// Paths they populate once fs is parsed.
func SetupFlags(fs *flag.FlagSet) *Paths {
	p := &Paths{}
	SetupFilePathFlag(fs, GraphicInfoFile, FlagGraphicInfoPath, &p.GraphicInfo)
	SetupFilePathFlag(fs, GraphicFile, FlagGraphicPath, &p.Graphic)
	SetupFilePathFlag(fs, PaletteFile, FlagPalettePath, &p.Palette)
	return p
}
