package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/infality/benchplot/internal"
	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/internal/outwriter"
	"github.com/infality/benchplot/internal/render"
	"github.com/infality/benchplot/schema"
)

// ExecuteChart discovers and parses the benchmark directory, then renders the
// combined violin and box chart to the configured artifact file.
// It serves as the main entry point for the 'chart' command.
func ExecuteChart(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	runID := beginRunTracking(store, "chart", cfg)

	files, series, err := LoadSeries(cfg.BenchDir, cfg.Suffix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		internal.Warning(fmt.Sprintf("No benchmark files matching *%s in %s, nothing to plot", cfg.Suffix, cfg.BenchDir))
		endRunTracking(store, runID, 0, 0, "")
		return nil
	}

	internal.LogBenchHeader(cfg, files)

	if err := render.WriteChartFile(cfg, series); err != nil {
		return err
	}

	if cfg.OpenChart {
		if err := internal.OpenArtifact(cfg.ChartFile); err != nil {
			contract.LogWarn("Cannot open chart viewer", err)
		}
	}

	endRunTracking(store, runID, len(files), totalSamples(series), cfg.ChartFile)
	return nil
}

// ExecuteStats summarizes every benchmark file and writes the result in the
// configured output format.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	runID := beginRunTracking(store, "stats", cfg)

	files, series, err := LoadSeries(cfg.BenchDir, cfg.Suffix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		internal.Warning(fmt.Sprintf("No benchmark files matching *%s in %s, nothing to summarize", cfg.Suffix, cfg.BenchDir))
		endRunTracking(store, runID, 0, 0, "")
		return nil
	}

	// Machine-readable modes may stream to stdout, so the header only
	// accompanies the human-readable table.
	if cfg.Output == schema.TextOut {
		internal.LogBenchHeader(cfg, files)
	}

	summaries, err := Summarize(series)
	if err != nil {
		return err
	}

	if err := outwriter.WriteSummaryResults(summaries, cfg, time.Since(start)); err != nil {
		return err
	}

	endRunTracking(store, runID, len(files), totalSamples(series), cfg.OutputFile)
	return nil
}

// ExecuteList writes the discovered benchmark files in plot order.
// It serves as the main entry point for the 'list' command.
func ExecuteList(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	files, series, err := LoadSeries(cfg.BenchDir, cfg.Suffix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		internal.Warning(fmt.Sprintf("No benchmark files matching *%s in %s", cfg.Suffix, cfg.BenchDir))
		return nil
	}

	counts := make([]int, len(series))
	for i, s := range series {
		counts[i] = s.Len()
	}
	return outwriter.WriteFileResults(files, counts, cfg, time.Since(start))
}

// ExecuteMeasure times the given command and writes the sample file into the
// benchmark directory, then prints the summary statistics for the new series.
// It serves as the main entry point for the 'measure' command.
func ExecuteMeasure(ctx context.Context, cfg *contract.Config, command []string) error {
	start := time.Now()

	if err := os.MkdirAll(cfg.BenchDir, 0o755); err != nil {
		return fmt.Errorf("cannot create benchmark directory: %w", err)
	}

	internal.LogMeasureHeader(cfg, command)

	samples, err := MeasureCommand(ctx, cfg, command)
	if err != nil {
		return err
	}

	target := filepath.Join(cfg.BenchDir, cfg.MeasureLabel+cfg.Suffix)
	if err := WriteSamples(target, samples); err != nil {
		return err
	}
	fmt.Printf("💾 Saved %d samples to %s\n", len(samples), target)

	series := []*schema.Series{{Label: cfg.MeasureLabel, Path: target, Samples: samples}}
	summaries, err := Summarize(series)
	if err != nil {
		return err
	}
	return outwriter.WriteSummaryResults(summaries, cfg, time.Since(start))
}

// beginRunTracking records the start of a tracked run in the history store.
// A zero run ID disables further tracking for this run. Failures only warn.
func beginRunTracking(store contract.HistoryStore, command string, cfg *contract.Config) int64 {
	if store == nil {
		return 0
	}

	configParams := map[string]any{
		"suffix":    cfg.Suffix,
		"precision": cfg.Precision,
		"output":    string(cfg.Output),
	}
	if command == "chart" {
		configParams["chart_file"] = cfg.ChartFile
		configParams["chart_size"] = fmt.Sprintf("%dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}

	runID, err := store.BeginRun(time.Now(), command, cfg.BenchDir, configParams)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0
	}
	return runID
}

// endRunTracking finalizes a tracked run. Failures only warn.
func endRunTracking(store contract.HistoryStore, runID int64, fileCount int, sampleCount int64, artifact string) {
	if store == nil || runID <= 0 {
		return
	}
	if err := store.EndRun(runID, time.Now(), fileCount, sampleCount, artifact); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}

// totalSamples sums the sample counts across all series.
func totalSamples(series []*schema.Series) int64 {
	var n int64
	for _, s := range series {
		n += int64(s.Len())
	}
	return n
}
