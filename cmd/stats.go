package cmd

import (
	"github.com/infality/benchplot/core"
	"github.com/infality/benchplot/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd prints summary statistics for every benchmark file.
var statsCmd = &cobra.Command{
	Use:   "stats [dir]",
	Short: "Summarize benchmark files with per-file latency statistics.",
	Long: `Compute descriptive statistics for every benchmark file in a directory.

For each file the summary reports sample count, total, mean, median, p95,
min, max, and standard deviation, plus a speedup column relative to the
file with the fastest median. Rows keep the same order as the chart,
oldest file first.

Examples:
  # Text table for the current directory
  benchplot stats

  # Machine-readable exports
  benchplot stats ./results --output json --output-file summary.json
  benchplot stats ./results --output csv
  benchplot stats ./results --output parquet --output-file summary.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot summarize benchmarks", err)
		}
	},
}
