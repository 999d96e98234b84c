package internal

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
)

// LogBenchHeader prints a concise, 2-line header for a benchmark-directory run.
// The files slice must not be empty and must already be sorted by mtime.
func LogBenchHeader(cfg *contract.Config, files []schema.BenchFile) {
	dirName := filepath.Base(cfg.BenchDir)
	if dirName == "" || dirName == "." {
		dirName = "current"
	}

	// Line 1: The run summary (directory and file count)
	fmt.Printf("🔎 Bench dir: %s (%d files)\n", dirName, len(files))

	// Line 2: The mtime span covered by the files
	oldest := files[0].ModTime
	newest := files[len(files)-1].ModTime
	fmt.Printf("📅 Range: %s → %s\n", oldest.Format(contract.DateTimeFormat), newest.Format(contract.DateTimeFormat))
}

// LogMeasureHeader prints a header for a measurement run.
func LogMeasureHeader(cfg *contract.Config, command []string) {
	fmt.Printf("🔎 Measuring: %s (runs: %d, warmup: %d)\n", strings.Join(command, " "), cfg.Runs, cfg.Warmup)
	fmt.Printf("📅 Started: %s\n", time.Now().Format(contract.DateTimeFormat))
}
