package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/infality/benchplot/schema"
)

// ReadSeries parses one benchmark file into a Series. Each line holds a
// single float64 sample in milliseconds. Trailing whitespace is stripped
// per line and lines that are empty after stripping are skipped, so files
// with or without a trailing newline parse identically. The first
// unparsable line aborts with a schema.ParseError carrying the file path,
// 1-based line number and offending text.
func ReadSeries(file schema.BenchFile) (*schema.Series, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot read benchmark file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	samples := make([]float64, 0, len(lines))
	for i, line := range lines {
		// TrimSpace also drops the \r left behind by CRLF line endings.
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, &schema.ParseError{
				Path: file.Path,
				Line: i + 1,
				Text: line,
				Err:  err,
			}
		}
		samples = append(samples, value)
	}

	return &schema.Series{
		Label:   file.Label,
		Path:    file.Path,
		Samples: samples,
	}, nil
}

// LoadSeries discovers benchmark files in dir and parses each one, keeping
// discovery order. Any discovery or parse failure aborts the whole load;
// an empty directory returns empty slices and no error.
func LoadSeries(dir string, suffix string) ([]schema.BenchFile, []*schema.Series, error) {
	files, err := ListBenchFiles(dir, suffix)
	if err != nil {
		return nil, nil, err
	}

	series := make([]*schema.Series, 0, len(files))
	for _, f := range files {
		s, err := ReadSeries(f)
		if err != nil {
			return nil, nil, err
		}
		series = append(series, s)
	}

	return files, series, nil
}
