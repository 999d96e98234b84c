// Package core has core logic for discovering, parsing and summarizing benchmark files.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/infality/benchplot/schema"
)

// ListBenchFiles discovers benchmark result files in dir. Only regular files
// whose name ends with suffix are kept; directories, symlinked directories
// and other non-regular entries are skipped. The result is ordered ascending
// by modification time, which fixes each file's x position in the chart.
// Ties keep the directory-listing order.
//
// A missing or unreadable dir is a fatal condition for callers; the returned
// error wraps the underlying *os.PathError so the offending path stays in
// the chain. An empty directory yields an empty slice and no error.
func ListBenchFiles(dir string, suffix string) ([]schema.BenchFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list benchmark directory: %w", err)
	}

	var files []schema.BenchFile
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}

		// entry.Info follows nothing; os.Stat resolves symlinks so a link
		// to a regular file still counts, matching os.path.isfile semantics.
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		files = append(files, schema.BenchFile{
			Path:      path,
			Name:      name,
			Label:     schema.FileStem(name),
			SizeBytes: info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	// Ascending mtime; stable so equal timestamps keep listing order.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}
