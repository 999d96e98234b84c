package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/infality/benchplot/schema"
)

// Speedup thresholds for label coloring.
const (
	nearThreshold = 1.5 // below this a series is within striking distance of the fastest
	slowThreshold = 3.0 // at or above this a series is an order-of-magnitude problem
)

// Color variables for console output.
var (
	FastestColor = color.New(color.FgGreen, color.Bold) // fastestColor marks the winning series.
	NearColor    = color.New(color.FgCyan)              // nearColor marks series close to the fastest.
	SlowerColor  = color.New(color.FgYellow)            // slowerColor marks a clear slowdown.
	SlowestColor = color.New(color.FgRed, color.Bold)   // slowestColor marks severe slowdowns.
)

// GetColorSpeedupLabel returns a colored text label for console output (table).
// It uses schema.GetSpeedupLabel to determine the string, and then applies the
// appropriate color for the slowdown band.
func GetColorSpeedupLabel(speedup float64) string {
	text := schema.GetSpeedupLabel(speedup)

	switch {
	case speedup <= 1.0:
		return FastestColor.Sprint(text)
	case speedup < nearThreshold:
		return NearColor.Sprint(text)
	case speedup < slowThreshold:
		return SlowerColor.Sprint(text)
	default:
		return SlowestColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".benchplot_history.db"
	}
	return filepath.Join(homeDir, ".benchplot_history.db")
}

// TruncateLabel truncates a label to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." marker and at least
// one character of content.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
