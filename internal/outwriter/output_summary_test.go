package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
)

func summaryFixtures() []schema.SeriesSummary {
	return []schema.SeriesSummary{
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
	}
}

func TestWriteSummaryResultsTable(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "summary.txt")

	cfg := &contract.Config{
		Output:     schema.TextOut,
		OutputFile: outFile,
		Precision:  2,
		Width:      160,
		UseColors:  false,
	}

	err := WriteSummaryResults(summaryFixtures(), cfg, 100*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	output := string(content)

	assert.Contains(t, output, "baseline")
	assert.Contains(t, output, "improved")
	assert.Contains(t, output, "12.10")
	assert.Contains(t, output, "5.90")
	assert.Contains(t, output, "2.05x")
	assert.Contains(t, output, "1.00x (fastest)")
	assert.Contains(t, output, "All timing columns in ms per query.")
	assert.Contains(t, output, "Summarized 2 files (2000 samples) in 100ms")
}

func TestWriteSummaryResultsJSON(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "summary.json")

	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: outFile,
		Precision:  2,
	}

	err := WriteSummaryResults(summaryFixtures(), cfg, 50*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result []map[string]any
	err = json.Unmarshal(content, &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["position"])
	assert.Equal(t, "baseline", result[0]["label"])
	assert.Equal(t, "2.05x", result[0]["vs_fastest"])
	assert.Equal(t, 12.1, result[0]["median_ms"])

	assert.Equal(t, float64(2), result[1]["position"])
	assert.Equal(t, "1.00x (fastest)", result[1]["vs_fastest"])
}

func TestWriteSummaryResultsCSV(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "summary.csv")

	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: outFile,
		Precision:  2,
	}

	err := WriteSummaryResults(summaryFixtures(), cfg, 50*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "position", header[0])
	assert.Equal(t, "label", header[1])
	assert.Equal(t, "vs_fastest", header[len(header)-1])

	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "baseline", records[1][1])
	assert.Equal(t, "/data/benchmarks/baseline.txt", records[1][2])
	assert.Equal(t, "1000", records[1][3])
	assert.Equal(t, "12.10", records[1][6])
	assert.Equal(t, "2.05x", records[1][len(records[1])-1])
	assert.Equal(t, "1.00x (fastest)", records[2][len(records[2])-1])
}

func TestWriteSummaryResultsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "summary.parquet")

	cfg := &contract.Config{
		Output:     schema.ParquetOut,
		OutputFile: outFile,
		Precision:  2,
	}

	err := WriteSummaryResults(summaryFixtures(), cfg, 50*time.Millisecond)
	require.NoError(t, err)

	info, err := os.Stat(outFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteSummaryResultsParquetRequiresFile(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.ParquetOut,
		Precision: 2,
	}

	err := WriteSummaryResults(summaryFixtures(), cfg, 50*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

func TestWriteSummaryResultsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "summary.txt")

	cfg := &contract.Config{
		Output:     schema.TextOut,
		OutputFile: outFile,
		Precision:  2,
		Width:      160,
	}

	err := WriteSummaryResults(nil, cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Summarized 0 files")
}
