// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/infality/benchplot/internal/contract"
)

const (
	// fallbackTermWidth is used when the terminal size cannot be detected.
	fallbackTermWidth = 80

	// tableBaseWidth is the number of characters consumed by the fixed
	// columns, separators and padding of the stats table.
	tableBaseWidth = 100

	minLabelWidth = 10
	maxLabelWidth = 40
)

// writeWithFile handles the common pattern of selecting an output target,
// running a writer callback against it, and confirming file output on stderr.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return fmt.Errorf("error selecting output file: %w", err)
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON writes data as indented JSON.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes a CSV header row and then hands the writer to a
// row callback, flushing when the callback returns.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(csvWriter)
}

// createFormatters returns a float formatter bound to the configured
// precision together with the integer format verb used in table rows.
func createFormatters(precision int) (func(float64) string, string) {
	numFmt := "%.*f"
	fmtFloat := func(value float64) string {
		return fmt.Sprintf(numFmt, precision, value)
	}
	intFmt := "%d"
	return fmtFloat, intFmt
}

// getMaxTableLabelWidth computes how many characters the label column may
// use, from the configured width override or the detected terminal width.
func getMaxTableLabelWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || w <= 0 {
			termWidth = fallbackTermWidth
		} else {
			termWidth = w
		}
	}

	available := termWidth - tableBaseWidth
	if available < minLabelWidth {
		return minLabelWidth
	}
	if available > maxLabelWidth {
		return maxLabelWidth
	}
	return available
}
