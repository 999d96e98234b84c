package history

import (
	"errors"
	"fmt"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/internal/parquet"
)

// ExecuteHistoryExport exports all recorded runs to a Parquet file.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total recorded runs: %d\n", status.TotalRuns)

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve run records: %w", err)
	}

	// Convert to Parquet format and write
	records := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunsParquet(records, outputFile); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(records), outputFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
