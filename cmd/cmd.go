// Package cmd defines the command-line interface for benchplot.
package cmd

import (
	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("suffix", "s", contract.DefaultSuffix, "File name suffix for benchmark files")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of history rows to display")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().StringP("out", "o", contract.DefaultChartFile, "Chart artifact path; the extension picks png or svg")
	chartCmd.Flags().String("title", "", "Chart title drawn above the plot area")
	chartCmd.Flags().Int("chart-width", contract.DefaultChartWidth, "Chart width in pixels")
	chartCmd.Flags().Int("chart-height", contract.DefaultChartHeight, "Chart height in pixels")
	chartCmd.Flags().Bool("open", false, "Open the rendered chart with the platform viewer")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}

	// Bind all flags of measureCmd to Viper
	measureCmd.Flags().IntP("runs", "n", contract.DefaultRuns, "Number of timed runs to record")
	measureCmd.Flags().Int("warmup", contract.DefaultWarmup, "Number of untimed warmup runs")
	measureCmd.Flags().String("label", contract.DefaultMeasureLabel, "Label for the recorded sample file")
	measureCmd.Flags().String("timeout", "", "Per-run timeout as a Go duration (e.g., 30s)")
	if err := viper.BindPFlags(measureCmd.Flags()); err != nil {
		contract.LogFatal("Error binding measure flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
