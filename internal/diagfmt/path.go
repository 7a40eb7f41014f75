package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
)

// displayPath renders path according to mode.
func displayPath(path string, mode PathMode, baseDir string) string {
	if path == "" {
		return path
	}
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	}

	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return path
		}
		baseDir = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(baseDir, abs)
	if err != nil {
		return path
	}
	if mode == PathModeAuto && (rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
