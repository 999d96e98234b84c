package cmd

import (
	"fmt"

	"github.com/infality/benchplot/core"
	"github.com/infality/benchplot/internal/contract"
	"github.com/spf13/cobra"
)

// splitMeasureArgs separates the optional directory argument from the command
// to measure. Everything after "--" is the command; without the separator the
// whole argument list is treated as the command and the directory defaults.
func splitMeasureArgs(cmd *cobra.Command, args []string) (dirArgs []string, command []string) {
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		return args[:at], args[at:]
	}
	return nil, args
}

// measureCmd times a command and records the samples as a benchmark file.
var measureCmd = &cobra.Command{
	Use:   "measure [dir] -- <command> [args...]",
	Short: "Time a command repeatedly and record a new benchmark file.",
	Long: `Run a command several times and record one sample per run.

The wall time of each timed run is written in milliseconds, one value per
line, to <dir>/<label><suffix>. Warmup runs execute first and are
discarded. The new file then shows up at the right edge of the next chart
since it carries the newest modification time.

Examples:
  # Ten timed runs (default) of a query script
  benchplot measure ./results -- ./run_queries.sh

  # More runs with a custom label and warmup
  benchplot measure ./results --runs 30 --warmup 3 --label with-index -- ./run_queries.sh

  # Guard against hangs
  benchplot measure --timeout 30s -- ./run_queries.sh`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		dirArgs, command := splitMeasureArgs(cmd, args)
		if len(dirArgs) > 1 {
			return fmt.Errorf("at most one directory may precede the -- separator (received %d arguments)", len(dirArgs))
		}
		if len(command) == 0 {
			return fmt.Errorf("no command to measure; pass it after --")
		}
		return sharedSetup(rootCtx, cmd, dirArgs)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_, command := splitMeasureArgs(cmd, args)
		if err := core.ExecuteMeasure(rootCtx, cfg, command); err != nil {
			contract.LogFatal("Cannot run measurement", err)
		}
	},
}
