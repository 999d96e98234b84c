package schema

import (
	"path/filepath"
	"strings"
)

// FileStem returns the base name of a path with its extension stripped.
// This is the x-axis label used for each benchmark file, so "baseline.txt"
// becomes "baseline". A name with no extension is returned unchanged.
func FileStem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
