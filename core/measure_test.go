package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteSamples tests that written samples read back unchanged.
func TestWriteSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark.txt")
	samples := []float64{1.5, 2.0, 3.25}

	require.NoError(t, WriteSamples(path, samples))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.5\n2\n3.25", string(data))

	series, err := ReadSeries(schema.BenchFile{Path: path, Name: "benchmark.txt", Label: "benchmark"})
	require.NoError(t, err)
	assert.Equal(t, samples, series.Samples)
}

// TestMeasureCommand tests the warmup and timed run loop.
func TestMeasureCommand(t *testing.T) {
	cfg := &contract.Config{Runs: 3, Warmup: 1}

	samples, err := MeasureCommand(context.Background(), cfg, []string{"true"})
	require.NoError(t, err)
	require.Len(t, samples, 3)

	for _, s := range samples {
		assert.GreaterOrEqual(t, s, 0.0)
	}
}

// TestMeasureCommandFailures tests the abort conditions.
func TestMeasureCommandFailures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *contract.Config
		command []string
		errText string
	}{
		{"no command", &contract.Config{Runs: 1}, nil, "no command to measure"},
		{"failing command", &contract.Config{Runs: 2}, []string{"false"}, "run 1: command failed"},
		{"failing warmup", &contract.Config{Runs: 1, Warmup: 1}, []string{"false"}, "warmup run 1"},
		{"missing binary", &contract.Config{Runs: 1}, []string{"benchplot-no-such-binary"}, "command failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MeasureCommand(context.Background(), tt.cfg, tt.command)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errText)
		})
	}
}

// TestMeasureCommandTimeout tests that the per-run deadline aborts a stuck
// command.
func TestMeasureCommandTimeout(t *testing.T) {
	cfg := &contract.Config{Runs: 1, Timeout: 50 * time.Millisecond}

	_, err := MeasureCommand(context.Background(), cfg, []string{"sleep", "5"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "timed out")
}
