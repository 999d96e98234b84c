// Package parquet provides data structures and functions for exporting
// benchmark run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/infality/benchplot/schema"
)

// RunRecord represents a single recorded benchplot run with metadata.
// This struct maps to the benchplot_runs database table.
type RunRecord struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the duration of the run in milliseconds (nullable)
	DurationMs *int32 `parquet:"duration_ms,optional,snappy"`

	// Command is the subcommand that produced this run
	Command string `parquet:"command,snappy"`

	// BenchDir is the benchmark directory the run read from
	BenchDir string `parquet:"bench_dir,snappy"`

	// FileCount is the number of benchmark files processed
	FileCount int32 `parquet:"file_count,snappy"`

	// SampleCount is the total number of samples across all files
	SampleCount int64 `parquet:"sample_count,snappy"`

	// ArtifactFile is the chart or report file the run produced (nullable)
	ArtifactFile *string `parquet:"artifact_file,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SummaryRecord represents the summary statistics of a single benchmark file.
type SummaryRecord struct {
	// Position is the plot position of the file, oldest first
	Position int32 `parquet:"position,snappy"`

	// Label is the file name without its suffix
	Label string `parquet:"label,snappy"`

	// FilePath is the path to the benchmark file
	FilePath string `parquet:"file_path,snappy"`

	// Samples is the number of parsed samples
	Samples int32 `parquet:"samples,snappy"`

	// TotalMs is the sum of all samples in milliseconds
	TotalMs float64 `parquet:"total_ms,snappy"`

	// MeanMs is the arithmetic mean in milliseconds
	MeanMs float64 `parquet:"mean_ms,snappy"`

	// MedianMs is the median in milliseconds
	MedianMs float64 `parquet:"median_ms,snappy"`

	// P95Ms is the 95th percentile in milliseconds
	P95Ms float64 `parquet:"p95_ms,snappy"`

	// MinMs is the fastest sample in milliseconds
	MinMs float64 `parquet:"min_ms,snappy"`

	// MaxMs is the slowest sample in milliseconds
	MaxMs float64 `parquet:"max_ms,snappy"`

	// StdDevMs is the sample standard deviation in milliseconds
	StdDevMs float64 `parquet:"stddev_ms,snappy"`

	// Speedup is the median ratio relative to the fastest file
	Speedup float64 `parquet:"speedup,snappy"`
}

// WriteRunsParquet writes a slice of RunRecord structs to a Parquet file.
func WriteRunsParquet(data []RunRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RunRecord struct tags
	writer := parquet.NewGenericWriter[RunRecord](file)

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteSummariesParquet writes a slice of SummaryRecord structs to a Parquet file.
func WriteSummariesParquet(data []SummaryRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SummaryRecord struct tags
	writer := parquet.NewGenericWriter[SummaryRecord](file)

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertRunRecords converts schema.HistoryRunRecord to RunRecord for Parquet export.
func ConvertRunRecords(records []schema.HistoryRunRecord) []RunRecord {
	result := make([]RunRecord, len(records))
	for i, record := range records {
		result[i] = RunRecord{
			RunID:        record.RunID,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			DurationMs:   record.DurationMs,
			Command:      record.Command,
			BenchDir:     record.BenchDir,
			FileCount:    record.FileCount,
			SampleCount:  record.SampleCount,
			ArtifactFile: record.ArtifactFile,
			ConfigParams: record.ConfigParams,
		}
	}
	return result
}

// ConvertSummaryRecords converts schema.SeriesSummary to SummaryRecord for Parquet export.
func ConvertSummaryRecords(summaries []schema.SeriesSummary) []SummaryRecord {
	result := make([]SummaryRecord, len(summaries))
	for i, s := range summaries {
		result[i] = SummaryRecord{
			Position: int32(i + 1),
			Label:    s.Label,
			FilePath: s.Path,
			Samples:  int32(s.Samples),
			TotalMs:  s.TotalMs,
			MeanMs:   s.MeanMs,
			MedianMs: s.MedianMs,
			P95Ms:    s.P95Ms,
			MinMs:    s.MinMs,
			MaxMs:    s.MaxMs,
			StdDevMs: s.StdDevMs,
			Speedup:  s.Speedup,
		}
	}
	return result
}
