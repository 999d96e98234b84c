package schema

import "fmt"

// SeriesSummary holds the descriptive statistics for one benchmark file.
// All latency figures are in milliseconds. Speedup is the ratio of this
// series' median to the fastest median across the run (1.0 = fastest).
type SeriesSummary struct {
	Label    string  `json:"label"`
	Path     string  `json:"path"`
	Samples  int     `json:"samples"`
	TotalMs  float64 `json:"total_ms"`
	MeanMs   float64 `json:"mean_ms"`
	MedianMs float64 `json:"median_ms"`
	P95Ms    float64 `json:"p95_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`
	StdDevMs float64 `json:"stddev_ms"`
	Speedup  float64 `json:"speedup"`
}

// EnrichedSeriesSummary adds presentation data to a SeriesSummary.
type EnrichedSeriesSummary struct {
	Position int    `json:"position"`
	Label    string `json:"vs_fastest"`
	SeriesSummary
}

// EnrichedBenchFile adds presentation data to a BenchFile.
type EnrichedBenchFile struct {
	Position int   `json:"position"`
	Samples  int   `json:"samples"`
	BenchFile
}

// GetSpeedupLabel returns a plain text label for the speedup ratio relative
// to the fastest series. This is the core logic used for CSV, JSON, and
// table printing.
func GetSpeedupLabel(speedup float64) string {
	if speedup <= 1.0 {
		return "1.00x (fastest)"
	}
	return fmt.Sprintf("%.2fx", speedup)
}

// EnrichSummaries adds plot position and speedup label to summary results.
func EnrichSummaries(summaries []SeriesSummary) []EnrichedSeriesSummary {
	output := make([]EnrichedSeriesSummary, len(summaries))
	for i, s := range summaries {
		output[i] = EnrichedSeriesSummary{
			Position:      i + 1,
			Label:         GetSpeedupLabel(s.Speedup),
			SeriesSummary: s,
		}
	}
	return output
}

// EnrichBenchFiles adds plot position and sample counts to discovered files.
func EnrichBenchFiles(files []BenchFile, sampleCounts []int) []EnrichedBenchFile {
	output := make([]EnrichedBenchFile, len(files))
	for i, f := range files {
		samples := 0
		if i < len(sampleCounts) {
			samples = sampleCounts[i]
		}
		output[i] = EnrichedBenchFile{
			Position:  i + 1,
			Samples:   samples,
			BenchFile: f,
		}
	}
	return output
}
