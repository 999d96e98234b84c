package render

import (
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/stat"
)

// boxStats is the five-number summary drawn by a box glyph, plus the samples
// falling outside the whiskers.
type boxStats struct {
	Q1        float64
	Median    float64
	Q3        float64
	LoWhisker float64
	HiWhisker float64
	Outliers  []float64
}

// computeBoxStats derives quartiles and whisker positions. Whiskers reach the
// furthest sample within 1.5 IQR of the box; everything beyond is an outlier.
func computeBoxStats(samples []float64) boxStats {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	bs := boxStats{
		Q1:     stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.LinInterp, sorted, nil),
	}

	iqr := bs.Q3 - bs.Q1
	loFence := bs.Q1 - 1.5*iqr
	hiFence := bs.Q3 + 1.5*iqr

	for _, v := range sorted {
		if v >= loFence {
			bs.LoWhisker = v
			break
		}
		bs.Outliers = append(bs.Outliers, v)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= hiFence {
			bs.HiWhisker = sorted[i]
			break
		}
		bs.Outliers = append(bs.Outliers, sorted[i])
	}
	return bs
}

// BoxSeries renders one benchmark series as a box plot glyph: a filled
// quartile box in the accent color, a median line, whiskers with caps and
// outlier dots.
type BoxSeries struct {
	Name     string
	Position float64
	Samples  []float64
}

// GetName returns the series name.
func (bs BoxSeries) GetName() string { return bs.Name }

// GetYAxis returns which yaxis the series is mapped to.
func (bs BoxSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

// GetStyle returns the series style.
func (bs BoxSeries) GetStyle() chart.Style { return chart.Style{} }

// Validate validates the series.
func (bs BoxSeries) Validate() error {
	if len(bs.Samples) == 0 {
		return fmt.Errorf("box series %s has no samples", bs.Name)
	}
	return nil
}

// Render draws the box glyph onto the chart canvas.
func (bs BoxSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	stats := computeBoxStats(bs.Samples)
	cl, cb := canvasBox.Left, canvasBox.Bottom

	xc := cl + xrange.Translate(bs.Position)
	x0 := cl + xrange.Translate(bs.Position-boxHalfWidth)
	x1 := cl + xrange.Translate(bs.Position+boxHalfWidth)

	yQ1 := cb - yrange.Translate(stats.Q1)
	yQ3 := cb - yrange.Translate(stats.Q3)
	yMed := cb - yrange.Translate(stats.Median)
	yLo := cb - yrange.Translate(stats.LoWhisker)
	yHi := cb - yrange.Translate(stats.HiWhisker)

	// Whiskers and caps first, so the box covers their root.
	r.SetStrokeColor(whiskerColor)
	r.SetStrokeWidth(1.0)
	r.MoveTo(xc, yQ3)
	r.LineTo(xc, yHi)
	r.Stroke()
	r.MoveTo(xc, yQ1)
	r.LineTo(xc, yLo)
	r.Stroke()
	r.MoveTo(x0, yHi)
	r.LineTo(x1, yHi)
	r.Stroke()
	r.MoveTo(x0, yLo)
	r.LineTo(x1, yLo)
	r.Stroke()

	// Quartile box, filled and outlined in the accent color.
	r.SetFillColor(boxFillColor)
	r.SetStrokeColor(boxFillColor)
	r.SetStrokeWidth(1.0)
	r.MoveTo(x0, yQ1)
	r.LineTo(x1, yQ1)
	r.LineTo(x1, yQ3)
	r.LineTo(x0, yQ3)
	r.Close()
	r.FillStroke()

	// Median line across the box.
	r.SetStrokeColor(medianColor)
	r.SetStrokeWidth(1.0)
	r.MoveTo(x0, yMed)
	r.LineTo(x1, yMed)
	r.Stroke()

	// Outlier dots beyond the whiskers.
	r.SetStrokeColor(whiskerColor)
	r.SetStrokeWidth(1.0)
	for _, v := range stats.Outliers {
		r.Circle(outlierRadius, xc, cb-yrange.Translate(v))
		r.Stroke()
	}
}
