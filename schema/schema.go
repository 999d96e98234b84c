// Package schema has models, constants and shared helpers for all parts of benchplot.
package schema

import "time"

// BenchFile represents a discovered benchmark result file.
// Files are discovered in plot order: ascending by modification time,
// with directory-listing order breaking ties.
type BenchFile struct {
	Path      string    `json:"path"`       // Absolute or dir-relative path to the file
	Name      string    `json:"name"`       // Base name including extension
	Label     string    `json:"label"`      // Base name with the extension stripped
	SizeBytes int64     `json:"size_bytes"` // Current size of the file in bytes
	ModTime   time.Time `json:"mod_time"`   // Modification time used for ordering
}

// Series holds the parsed samples of a single benchmark file.
// Samples are kept in file order, duplicates included; values are
// milliseconds per query.
type Series struct {
	Label   string    `json:"label"`
	Path    string    `json:"path"`
	Samples []float64 `json:"samples"`
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.Samples)
}
