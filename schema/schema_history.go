package schema

import "time"

// HistoryRunRecord represents a row from the benchplot_runs table.
type HistoryRunRecord struct {
	RunID        int64      `json:"run_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	DurationMs   *int32     `json:"duration_ms,omitempty"`
	Command      string     `json:"command"`
	BenchDir     string     `json:"bench_dir"`
	FileCount    int32      `json:"file_count"`
	SampleCount  int64      `json:"sample_count"`
	ArtifactFile *string    `json:"artifact_file,omitempty"`
	ConfigParams *string    `json:"config_params,omitempty"`
}

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalSamples  int64            `json:"total_samples"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}
