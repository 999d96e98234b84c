// Package render draws the combined violin and box chart for benchmark series.
package render

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Glyph geometry in x axis units. One unit separates adjacent series.
const (
	violinPoints    = 100
	violinHalfWidth = 0.25
	boxHalfWidth    = 0.075
	outlierRadius   = 3.0
	yTickTarget     = 6
)

var (
	violinFillColor = drawing.Color{R: 31, G: 119, B: 180, A: 77}
	boxFillColor    = drawing.ColorFromHex("3b7cab")
	medianColor     = drawing.ColorFromHex("ff7f0e")
	whiskerColor    = chart.ColorBlack
	gridColor       = drawing.Color{R: 176, G: 176, B: 176, A: 255}
)

// BuildChart assembles the combined chart: per series one violin plus one box
// at x positions 1..N in input order, x ticks labeled with the series labels,
// the y axis named "ms per query" and horizontal grid lines only.
func BuildChart(cfg *contract.Config, series []*schema.Series) (chart.Chart, error) {
	if len(series) == 0 {
		return chart.Chart{}, errors.New("no series to plot")
	}

	lo := math.MaxFloat64
	hi := -math.MaxFloat64
	for _, s := range series {
		if s.Len() == 0 {
			return chart.Chart{}, &schema.EmptySeriesError{Path: s.Path}
		}
		for _, v := range s.Samples {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	// Pad the y range so glyphs never touch the canvas edge. A flat range
	// still needs some height to draw into.
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1.0)
	}
	yMin, yMax := lo-pad, hi+pad

	xTicks := make([]chart.Tick, 0, len(series))
	glyphs := make([]chart.Series, 0, 2*len(series))
	for i, s := range series {
		pos := float64(i + 1)
		xTicks = append(xTicks, chart.Tick{Value: pos, Label: s.Label})
		glyphs = append(glyphs, ViolinSeries{Name: s.Label, Position: pos, Samples: s.Samples})
	}
	for i, s := range series {
		glyphs = append(glyphs, BoxSeries{Name: s.Label, Position: float64(i + 1), Samples: s.Samples})
	}

	gridStyle := chart.Style{StrokeColor: gridColor, StrokeWidth: 1.0}

	return chart.Chart{
		Title:      cfg.ChartTitle,
		Width:      cfg.ChartWidth,
		Height:     cfg.ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Ticks:          xTicks,
			Range:          &chart.ContinuousRange{Min: 0.5, Max: float64(len(series)) + 0.5},
			GridMajorStyle: chart.Hidden(),
			GridMinorStyle: chart.Hidden(),
		},
		YAxis: chart.YAxis{
			Name:  "ms per query",
			Ticks: niceTicks(yMin, yMax),
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			// Grid line generation alternates major and minor ticks, so
			// both styles must be visible to grid every tick.
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: glyphs,
	}, nil
}

// WriteChartFile renders the chart into the configured artifact file, with
// the image format chosen from the file extension.
func WriteChartFile(cfg *contract.Config, series []*schema.Series) error {
	c, err := BuildChart(cfg, series)
	if err != nil {
		return err
	}

	provider := chart.PNG
	if cfg.ChartFormat == schema.SVGImage {
		provider = chart.SVG
	}

	file, err := os.Create(cfg.ChartFile)
	if err != nil {
		return fmt.Errorf("cannot create chart file: %w", err)
	}
	if err := c.Render(provider, file); err != nil {
		_ = file.Close()
		return fmt.Errorf("cannot render chart: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot finalize chart file: %w", err)
	}

	fmt.Printf("💾 Saved chart to %s\n", cfg.ChartFile)
	return nil
}

// niceTicks covers [lo, hi] with round-valued ticks at a 1/2/5 step.
func niceTicks(lo, hi float64) []chart.Tick {
	span := hi - lo
	raw := span / yTickTarget
	mag := math.Pow(10, math.Floor(math.Log10(raw)))

	step := mag * 10
	for _, m := range []float64{1, 2, 5} {
		if mag*m >= raw {
			step = mag * m
			break
		}
	}

	var ticks []chart.Tick
	first := math.Ceil(lo/step) * step
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi {
			break
		}
		// Limited precision keeps accumulated float noise out of labels.
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.10g", v)})
	}
	return ticks
}
