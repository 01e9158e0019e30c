package paths

import (
	"os"
	"path/filepath"
)

// DataDirEnv names an environment variable holding an extra directory to
// search for data files. It is searched first.
const DataDirEnv = "CROSSGATE_DATA"

func getPossiblePathDirs() []string {
	var dirs []string
	if d := os.Getenv(DataDirEnv); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, ".", "datafiles")
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe), filepath.Join(filepath.Dir(exe), "datafiles"))
	}
	return dirs
}

// getPossiblePaths returns the candidate locations for the passed datafile
// shortname, in search order.
func getPossiblePaths(fileName string) []string {
	if filepath.IsAbs(fileName) {
		return []string{fileName}
	}
	var paths []string
	for _, dir := range getPossiblePathDirs() {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	return paths
}
