package cmd

import (
	"github.com/infality/benchplot/core"
	"github.com/infality/benchplot/internal/contract"
	"github.com/spf13/cobra"
)

// listCmd shows the discovered benchmark files in plot order.
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the benchmark files a chart run would include.",
	Long: `List every benchmark file in a directory in plot order, oldest first.

Useful for checking which files a chart or stats run will pick up, in
which order, and how many samples each one holds, before rendering.

Examples:
  # List files in the current directory
  benchplot list

  # Only files with a different suffix
  benchplot list ./results --suffix .dat`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list benchmark files", err)
		}
	},
}
