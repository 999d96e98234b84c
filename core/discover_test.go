package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBenchFile creates a sample file with the given content and mtime.
func writeBenchFile(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

// TestListBenchFilesSortsByModTime tests that discovery orders files by
// ascending modification time, not by name.
func TestListBenchFilesSortsByModTime(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Names deliberately run against the mtime order.
	writeBenchFile(t, dir, "a.txt", "1.0", base.Add(2*time.Hour))
	writeBenchFile(t, dir, "b.txt", "1.0", base)
	writeBenchFile(t, dir, "c.txt", "1.0", base.Add(time.Hour))

	files, err := ListBenchFiles(dir, ".txt")
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "b", files[0].Label)
	assert.Equal(t, "c", files[1].Label)
	assert.Equal(t, "a", files[2].Label)
	assert.True(t, files[0].ModTime.Before(files[1].ModTime))
	assert.True(t, files[1].ModTime.Before(files[2].ModTime))
}

// TestListBenchFilesTieBreak tests that equal mtimes keep the directory
// listing order, which os.ReadDir sorts by name.
func TestListBenchFilesTieBreak(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	writeBenchFile(t, dir, "zeta.txt", "1.0", mtime)
	writeBenchFile(t, dir, "alpha.txt", "1.0", mtime)

	files, err := ListBenchFiles(dir, ".txt")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "alpha", files[0].Label)
	assert.Equal(t, "zeta", files[1].Label)
}

// TestListBenchFilesFiltersSuffix tests that only regular files with the
// configured suffix are discovered.
func TestListBenchFilesFiltersSuffix(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	writeBenchFile(t, dir, "baseline.txt", "1.0", mtime)
	writeBenchFile(t, dir, "notes.md", "ignore me", mtime)
	writeBenchFile(t, dir, "data.csv", "1,2", mtime)

	// A directory whose name carries the suffix must not be picked up.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	files, err := ListBenchFiles(dir, ".txt")
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "baseline", files[0].Label)
	assert.Equal(t, "baseline.txt", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "baseline.txt"), files[0].Path)
	assert.Equal(t, int64(3), files[0].SizeBytes)
}

// TestListBenchFilesEmptyDir tests that an empty directory is not an error.
func TestListBenchFilesEmptyDir(t *testing.T) {
	files, err := ListBenchFiles(t.TempDir(), ".txt")

	require.NoError(t, err)
	assert.Empty(t, files)
}

// TestListBenchFilesMissingDir tests that an unlistable directory fails with
// the offending path in the error chain.
func TestListBenchFilesMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := ListBenchFiles(missing, ".txt")

	require.Error(t, err)
	assert.ErrorContains(t, err, "cannot list benchmark directory")
	assert.ErrorContains(t, err, missing)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}
