package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/internal/parquet"
	"github.com/infality/benchplot/schema"
)

// WriteSummaryResults writes per-file summary statistics in the configured
// output format.
func WriteSummaryResults(summaries []schema.SeriesSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichSummaries(summaries))
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summaries, cfg)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeSummaryParquet(summaries, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summaries, cfg, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeSummaryTable writes summaries as a right-aligned text table.
func writeSummaryTable(writer io.Writer, summaries []schema.SeriesSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	labelWidth := getMaxTableLabelWidth(cfg)

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Pos", "Label", "Samples", "Total", "Mean", "Median", "P95", "Min", "Max", "StdDev", "vs Fastest"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	totalSamples := 0
	for i, s := range summaries {
		speedupLabel := schema.GetSpeedupLabel(s.Speedup)
		if cfg.UseColors {
			speedupLabel = contract.GetColorSpeedupLabel(s.Speedup)
		}
		row := []string{
			strconv.Itoa(i + 1), // Pos
			contract.TruncateLabel(s.Label, labelWidth),
			fmt.Sprintf(intFmt, s.Samples),
			fmtFloat(s.TotalMs),
			fmtFloat(s.MeanMs),
			fmtFloat(s.MedianMs),
			fmtFloat(s.P95Ms),
			fmtFloat(s.MinMs),
			fmtFloat(s.MaxMs),
			fmtFloat(s.StdDevMs),
			speedupLabel,
		}
		data = append(data, row)
		totalSamples += s.Samples
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "All timing columns in ms per query.\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Summarized %d files (%d samples) in %v\n", len(summaries), totalSamples, duration); err != nil {
		return err
	}
	return nil
}

// writeSummaryCSV writes summaries as CSV rows.
func writeSummaryCSV(w io.Writer, summaries []schema.SeriesSummary, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{
		"position", "label", "file", "samples",
		"total_ms", "mean_ms", "median_ms", "p95_ms",
		"min_ms", "max_ms", "stddev_ms", "speedup", "vs_fastest",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, s := range summaries {
			row := []string{
				strconv.Itoa(i + 1),
				s.Label,
				s.Path,
				strconv.Itoa(s.Samples),
				fmtFloat(s.TotalMs),
				fmtFloat(s.MeanMs),
				fmtFloat(s.MedianMs),
				fmtFloat(s.P95Ms),
				fmtFloat(s.MinMs),
				fmtFloat(s.MaxMs),
				fmtFloat(s.StdDevMs),
				fmtFloat(s.Speedup),
				schema.GetSpeedupLabel(s.Speedup),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeSummaryParquet writes summaries to a Parquet file. Parquet output is
// binary, so stdout is not a valid target.
func writeSummaryParquet(summaries []schema.SeriesSummary, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	records := parquet.ConvertSummaryRecords(summaries)
	if err := parquet.WriteSummariesParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
