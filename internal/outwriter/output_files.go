package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
)

// WriteFileResults writes the discovered benchmark files in the configured
// output format. Files arrive in plot order, oldest first, and sampleCounts
// holds the parsed sample count per file at matching indexes.
func WriteFileResults(files []schema.BenchFile, sampleCounts []int, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichBenchFiles(files, sampleCounts))
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFilesCSV(w, files, sampleCounts)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFilesTable(w, files, sampleCounts, cfg, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeFilesTable writes discovered files as a right-aligned text table.
func writeFilesTable(writer io.Writer, files []schema.BenchFile, sampleCounts []int, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	labelWidth := getMaxTableLabelWidth(cfg)

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Pos", "Label", "File", "Samples", "Size (KB)", "Modified"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	totalSamples := 0
	for i, f := range files {
		samples := 0
		if i < len(sampleCounts) {
			samples = sampleCounts[i]
		}
		row := []string{
			strconv.Itoa(i + 1), // Pos
			contract.TruncateLabel(f.Label, labelWidth),
			f.Name,
			fmt.Sprintf(intFmt, samples),
			fmtFloat(float64(f.SizeBytes) / 1024.0),
			f.ModTime.Format(contract.DateTimeFormat),
		}
		data = append(data, row)
		totalSamples += samples
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Listed %d files (%d samples) in %v\n", len(files), totalSamples, duration); err != nil {
		return err
	}
	return nil
}

// writeFilesCSV writes discovered files as CSV rows.
func writeFilesCSV(w io.Writer, files []schema.BenchFile, sampleCounts []int) error {
	header := []string{"position", "label", "file", "path", "samples", "size_bytes", "mod_time"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, f := range files {
			samples := 0
			if i < len(sampleCounts) {
				samples = sampleCounts[i]
			}
			row := []string{
				strconv.Itoa(i + 1),
				f.Label,
				f.Name,
				f.Path,
				strconv.Itoa(samples),
				strconv.FormatInt(f.SizeBytes, 10),
				f.ModTime.Format(contract.DateTimeFormat),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
