package core

import (
	"sort"

	"github.com/infality/benchplot/schema"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes descriptive statistics for each series, in input order.
// Quantiles use linear interpolation between adjacent samples. Speedup is
// each median divided by the fastest median across the run, so the fastest
// series reads 1.0 and everything else reads how many times slower it is.
func Summarize(series []*schema.Series) ([]schema.SeriesSummary, error) {
	summaries := make([]schema.SeriesSummary, 0, len(series))

	for _, s := range series {
		if s.Len() == 0 {
			return nil, &schema.EmptySeriesError{Path: s.Path}
		}

		sorted := make([]float64, len(s.Samples))
		copy(sorted, s.Samples)
		sort.Float64s(sorted)

		total := 0.0
		for _, v := range s.Samples {
			total += v
		}

		stddev := 0.0
		if len(sorted) > 1 {
			stddev = stat.StdDev(s.Samples, nil)
		}

		summaries = append(summaries, schema.SeriesSummary{
			Label:    s.Label,
			Path:     s.Path,
			Samples:  len(s.Samples),
			TotalMs:  total,
			MeanMs:   stat.Mean(s.Samples, nil),
			MedianMs: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
			P95Ms:    stat.Quantile(0.95, stat.LinInterp, sorted, nil),
			MinMs:    sorted[0],
			MaxMs:    sorted[len(sorted)-1],
			StdDevMs: stddev,
		})
	}

	applySpeedups(summaries)
	return summaries, nil
}

// applySpeedups fills in the Speedup field relative to the fastest median.
// Non-positive medians make the ratio meaningless, so every series reads
// 1.0 in that case.
func applySpeedups(summaries []schema.SeriesSummary) {
	if len(summaries) == 0 {
		return
	}

	fastest := summaries[0].MedianMs
	for _, s := range summaries[1:] {
		if s.MedianMs < fastest {
			fastest = s.MedianMs
		}
	}

	for i := range summaries {
		if fastest <= 0 {
			summaries[i].Speedup = 1.0
			continue
		}
		summaries[i].Speedup = summaries[i].MedianMs / fastest
	}
}
