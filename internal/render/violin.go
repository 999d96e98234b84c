package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// ViolinSeries renders the kernel density of one benchmark series as a
// filled polygon mirrored around its x position. No extrema marks are
// drawn; the overlaid box carries those.
type ViolinSeries struct {
	Name     string
	Position float64
	Samples  []float64
}

// GetName returns the series name.
func (vs ViolinSeries) GetName() string { return vs.Name }

// GetYAxis returns which yaxis the series is mapped to.
func (vs ViolinSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

// GetStyle returns the series style.
func (vs ViolinSeries) GetStyle() chart.Style { return chart.Style{} }

// Validate validates the series.
func (vs ViolinSeries) Validate() error {
	if len(vs.Samples) == 0 {
		return fmt.Errorf("violin series %s has no samples", vs.Name)
	}
	return nil
}

// Render draws the violin body onto the chart canvas.
func (vs ViolinSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	curve := kdeCurve(vs.Samples, violinPoints)
	cl, cb := canvasBox.Left, canvasBox.Bottom

	r.SetFillColor(violinFillColor)

	if len(curve.Y) == 1 {
		// Zero variance: the density collapses to one value, drawn as a
		// thin full-width bar instead of failing.
		py := cb - yrange.Translate(curve.Y[0])
		x0 := cl + xrange.Translate(vs.Position-violinHalfWidth)
		x1 := cl + xrange.Translate(vs.Position+violinHalfWidth)
		r.MoveTo(x0, py-1)
		r.LineTo(x1, py-1)
		r.LineTo(x1, py+1)
		r.LineTo(x0, py+1)
		r.Close()
		r.Fill()
		return
	}

	// Widths scale so the densest point spans the full half width.
	scale := violinHalfWidth / floats.Max(curve.D)

	// Right edge bottom to top, then left edge top to bottom.
	for i, y := range curve.Y {
		px := cl + xrange.Translate(vs.Position+curve.D[i]*scale)
		py := cb - yrange.Translate(y)
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	for i := len(curve.Y) - 1; i >= 0; i-- {
		px := cl + xrange.Translate(vs.Position-curve.D[i]*scale)
		py := cb - yrange.Translate(curve.Y[i])
		r.LineTo(px, py)
	}
	r.Close()
	r.Fill()
}
