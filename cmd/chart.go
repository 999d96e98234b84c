package cmd

import (
	"github.com/infality/benchplot/core"
	"github.com/infality/benchplot/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd renders the combined violin and box chart.
var chartCmd = &cobra.Command{
	Use:   "chart [dir]",
	Short: "Render a violin chart from a directory of benchmark files.",
	Long: `Render every benchmark file in a directory as one combined chart.

Each file becomes a violin showing the full latency distribution, with a
box plot overlaid for the quartiles, whiskers, and outliers. Files are
placed left to right by modification time, so a directory that accumulates
one file per experiment reads as a timeline of your optimization work.

Expected input: a directory of text files (default suffix .txt), one
sample per line, each sample the milliseconds spent per query.

Examples:
  # Chart the current directory into benchmarks.png
  benchplot chart

  # Chart a results directory into an SVG and open it
  benchplot chart ./results --out comparison.svg --open

  # Larger render for slides
  benchplot chart ./results --chart-width 1920 --chart-height 1080`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
