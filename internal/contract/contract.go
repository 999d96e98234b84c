// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/infality/benchplot/schema"
)

// HistoryStore defines the interface for tracking benchplot runs.
// This allows the history layer to be mocked for testing.
type HistoryStore interface {
	// BeginRun creates a new run record and returns its unique ID
	BeginRun(startTime time.Time, command string, benchDir string, configParams map[string]any) (int64, error)

	// EndRun updates the run record with completion data
	EndRun(runID int64, endTime time.Time, fileCount int, sampleCount int64, artifactFile string) error

	// GetRecentRuns retrieves the most recent runs, newest first
	GetRecentRuns(limit int) ([]schema.HistoryRunRecord, error)

	// GetAllRuns retrieves every run record, oldest first
	GetAllRuns() ([]schema.HistoryRunRecord, error)

	// Clear deletes all run records
	Clear() error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}
