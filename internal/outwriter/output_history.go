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

// WriteHistoryRuns writes recorded runs in the configured output format.
// Runs arrive newest first, matching the store query order.
func WriteHistoryRuns(runs []schema.HistoryRunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsCSV(w, runs)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(w, runs, cfg)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeRunsTable writes run records as a right-aligned text table.
func writeRunsTable(writer io.Writer, runs []schema.HistoryRunRecord, cfg *contract.Config) error {
	labelWidth := getMaxTableLabelWidth(cfg)

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"ID", "Started", "Duration (ms)", "Command", "Dir", "Files", "Samples", "Artifact"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, r := range runs {
		row := []string{
			strconv.FormatInt(r.RunID, 10),
			r.StartTime.Format(contract.DateTimeFormat),
			formatNullableInt32(r.DurationMs),
			r.Command,
			contract.TruncateLabel(r.BenchDir, labelWidth),
			strconv.FormatInt(int64(r.FileCount), 10),
			strconv.FormatInt(r.SampleCount, 10),
			formatNullableString(r.ArtifactFile),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d recorded runs\n", len(runs)); err != nil {
		return err
	}
	return nil
}

// writeRunsCSV writes run records as CSV rows.
func writeRunsCSV(w io.Writer, runs []schema.HistoryRunRecord) error {
	header := []string{
		"run_id", "start_time", "end_time", "duration_ms",
		"command", "bench_dir", "file_count", "sample_count", "artifact_file",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range runs {
			row := []string{
				strconv.FormatInt(r.RunID, 10),
				r.StartTime.Format(contract.DateTimeFormat),
				formatNullableTime(r.EndTime),
				formatNullableInt32(r.DurationMs),
				r.Command,
				r.BenchDir,
				strconv.FormatInt(int64(r.FileCount), 10),
				strconv.FormatInt(r.SampleCount, 10),
				formatNullableString(r.ArtifactFile),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// formatNullableTime renders a nullable timestamp, empty when unset.
func formatNullableTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(contract.DateTimeFormat)
}

// formatNullableInt32 renders a nullable counter, empty when unset.
func formatNullableInt32(v *int32) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(int64(*v), 10)
}

// formatNullableString renders a nullable string, empty when unset.
func formatNullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
