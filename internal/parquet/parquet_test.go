package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infality/benchplot/schema"
)

func sampleRunRecords() []RunRecord {
	now := time.Now()
	endTime1 := now.Add(2 * time.Second)
	durationMs1 := int32(endTime1.Sub(now).Milliseconds())
	artifact1 := "benchmarks.png"
	configParams1 := `{"suffix":".txt","output":"text"}`

	return []RunRecord{
		{
			RunID:        1,
			StartTime:    now,
			EndTime:      &endTime1,
			DurationMs:   &durationMs1,
			Command:      "chart",
			BenchDir:     "/data/benchmarks",
			FileCount:    4,
			SampleCount:  4000,
			ArtifactFile: &artifact1,
			ConfigParams: &configParams1,
		},
		{
			RunID:       2,
			StartTime:   now.Add(-time.Hour),
			Command:     "stats",
			BenchDir:    "/data/benchmarks",
			FileCount:   0,
			SampleCount: 0,
		},
	}
}

func TestRunRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	runSchema := parquet.SchemaOf(new(RunRecord))
	require.NotNil(t, runSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"duration_ms",
		"command",
		"bench_dir",
		"file_count",
		"sample_count",
		"artifact_file",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := runSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestSummaryRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	summarySchema := parquet.SchemaOf(new(SummaryRecord))
	require.NotNil(t, summarySchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"position",
		"label",
		"file_path",
		"samples",
		"total_ms",
		"mean_ms",
		"median_ms",
		"p95_ms",
		"min_ms",
		"max_ms",
		"stddev_ms",
		"speedup",
	}

	for _, colName := range expectedColumns {
		col, ok := summarySchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "runs.parquet")

	data := sampleRunRecords()
	err := WriteRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[RunRecord](file)
	defer reader.Close()

	readData := make([]RunRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].Command, readData[i].Command, "Command should match")
		assert.Equal(t, data[i].BenchDir, readData[i].BenchDir, "BenchDir should match")
		assert.Equal(t, data[i].FileCount, readData[i].FileCount, "FileCount should match")
		assert.Equal(t, data[i].SampleCount, readData[i].SampleCount, "SampleCount should match")
		assert.WithinDuration(t, data[i].StartTime, readData[i].StartTime, time.Nanosecond, "StartTime should match within nanosecond precision")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].ArtifactFile == nil {
			assert.Nil(t, readData[i].ArtifactFile, "ArtifactFile should be nil")
		} else {
			require.NotNil(t, readData[i].ArtifactFile, "ArtifactFile should not be nil")
			assert.Equal(t, *data[i].ArtifactFile, *readData[i].ArtifactFile, "ArtifactFile should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteSummariesParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "summaries.parquet")

	data := ConvertSummaryRecords([]schema.SeriesSummary{
		{
			Label:    "baseline",
			Path:     "/data/benchmarks/baseline.txt",
			Samples:  1000,
			TotalMs:  12450.5,
			MeanMs:   12.45,
			MedianMs: 12.1,
			P95Ms:    18.7,
			MinMs:    9.8,
			MaxMs:    31.2,
			StdDevMs: 2.9,
			Speedup:  2.05,
		},
		{
			Label:    "improved",
			Path:     "/data/benchmarks/improved.txt",
			Samples:  1000,
			TotalMs:  6100.0,
			MeanMs:   6.1,
			MedianMs: 5.9,
			P95Ms:    8.4,
			MinMs:    4.7,
			MaxMs:    14.9,
			StdDevMs: 1.2,
			Speedup:  1.0,
		},
	})

	err := WriteSummariesParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[SummaryRecord](file)
	defer reader.Close()

	readData := make([]SummaryRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].Position, readData[i].Position, "Position should match")
		assert.Equal(t, data[i].Label, readData[i].Label, "Label should match")
		assert.Equal(t, data[i].FilePath, readData[i].FilePath, "FilePath should match")
		assert.Equal(t, data[i].Samples, readData[i].Samples, "Samples should match")
		assert.InDelta(t, data[i].TotalMs, readData[i].TotalMs, 0.001, "TotalMs should match")
		assert.InDelta(t, data[i].MedianMs, readData[i].MedianMs, 0.001, "MedianMs should match")
		assert.InDelta(t, data[i].Speedup, readData[i].Speedup, 0.001, "Speedup should match")
	}
}

func TestWriteRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_runs.parquet")

	err := WriteRunsParquet([]RunRecord{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteRunsParquet_InvalidPath(t *testing.T) {
	data := sampleRunRecords()
	err := WriteRunsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestWriteSummariesParquet_InvalidPath(t *testing.T) {
	err := WriteSummariesParquet([]SummaryRecord{}, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertRunRecords(t *testing.T) {
	now := time.Now()
	endTime := now.Add(3 * time.Second)
	durationMs := int32(3000)
	artifact := "out.png"

	records := []schema.HistoryRunRecord{
		{
			RunID:        7,
			StartTime:    now,
			EndTime:      &endTime,
			DurationMs:   &durationMs,
			Command:      "chart",
			BenchDir:     "/tmp/bench",
			FileCount:    2,
			SampleCount:  512,
			ArtifactFile: &artifact,
		},
	}

	converted := ConvertRunRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, "chart", converted[0].Command)
	assert.Equal(t, "/tmp/bench", converted[0].BenchDir)
	assert.Equal(t, int32(2), converted[0].FileCount)
	assert.Equal(t, int64(512), converted[0].SampleCount)
	require.NotNil(t, converted[0].DurationMs)
	assert.Equal(t, int32(3000), *converted[0].DurationMs)
	require.NotNil(t, converted[0].ArtifactFile)
	assert.Equal(t, "out.png", *converted[0].ArtifactFile)
	assert.Nil(t, converted[0].ConfigParams)
}

func TestConvertSummaryRecords(t *testing.T) {
	summaries := []schema.SeriesSummary{
		{Label: "a", Path: "a.txt", Samples: 3, MedianMs: 2.0, Speedup: 1.0},
		{Label: "b", Path: "b.txt", Samples: 5, MedianMs: 4.0, Speedup: 2.0},
	}

	converted := ConvertSummaryRecords(summaries)
	require.Len(t, converted, 2)
	assert.Equal(t, int32(1), converted[0].Position)
	assert.Equal(t, int32(2), converted[1].Position)
	assert.Equal(t, "a", converted[0].Label)
	assert.Equal(t, int32(5), converted[1].Samples)
	assert.InDelta(t, 2.0, converted[1].Speedup, 0.0001)
}
