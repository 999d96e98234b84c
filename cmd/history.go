package cmd

import (
	"fmt"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/internal/history"
	"github.com/infality/benchplot/internal/outwriter"
	"github.com/infality/benchplot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Open the store with the loaded config. Unlike the primary commands,
	// the history subcommands exist to inspect the store, so a failed open
	// is a hard error here.
	store, err := history.NewHistoryStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	// Get output-related config values (used by list and export commands)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	cfg.Width = viper.GetInt("width")
	cfg.ResultLimit = viper.GetInt("limit")

	colors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by the benchmark commands. This avoids chart and
// measure validation for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded benchmark runs",
	Long: `Manage the run history that benchplot records for chart and stats runs.

When enabled, benchplot stores one row per run:
- Start and completion timestamps with the run duration
- The command, benchmark directory, and configuration used
- File and sample counts plus the produced artifact path

This makes it easy to answer "when did I last benchmark this" and to export
benchmarking activity for further analysis.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent runs
  status  - Show history store statistics
  clear   - Remove all recorded runs
  export  - Export runs to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Show the most recent runs
  benchplot history list

  # Export for analysis in pandas/DuckDB
  benchplot history export --output-file runs.parquet`,
}

// historyListCmd shows recent runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent recorded runs",
	Long: `List recorded benchmark runs, newest first.

Each row shows when the run started, how long it took, the command and
directory it covered, the file and sample counts, and the artifact it
produced. Use --limit to control how many rows appear and --output to get
csv or json instead of the table.

Examples:
  # The default table
  benchplot history list

  # The last five runs as JSON
  benchplot history list --limit 5 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := historyStore.GetRecentRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list run history", err)
		}
		if err := outwriter.WriteHistoryRuns(runs, cfg); err != nil {
			contract.LogFatal("Failed to write run history", err)
		}
	},
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show detailed information about the run history store.

Displays:
- Backend type and connection status
- Total number of recorded runs
- Last and oldest run timestamps
- Total samples recorded across all runs
- Database table sizes

Examples:
  # Check history tracking status
  benchplot history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(status)
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded benchmark runs",
	Long: `Delete every recorded run from the history store.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  benchplot history export --output-file backup.parquet
  benchplot history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports run history to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded runs to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export all recorded runs
  benchplot history export --output-file runs.parquet

  # Query the export with DuckDB
  duckdb -c "SELECT command, count(*) FROM read_parquet('runs.parquet') GROUP BY command"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(historyStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  benchplot history migrate

  # Migrate to specific version
  benchplot history migrate --target-version 1

  # Rollback to initial state
  benchplot history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
