package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// densityCurve is a kernel density estimate evaluated on a fixed grid.
// A single grid point means the series had zero variance and all mass
// sits on that value.
type densityCurve struct {
	Y []float64 // evaluation grid, ascending
	D []float64 // density at each grid point
}

// kdeCurve estimates the sample density with a Gaussian kernel evaluated at
// points positions spanning exactly the sample range. The bandwidth follows
// Scott's rule, sigma * n^(-1/5), with the sample standard deviation.
func kdeCurve(samples []float64, points int) densityCurve {
	n := len(samples)
	sigma := 0.0
	if n > 1 {
		sigma = stat.StdDev(samples, nil)
	}
	if sigma == 0 {
		// Zero variance, including the single-sample case.
		return densityCurve{Y: []float64{samples[0]}, D: []float64{1}}
	}

	kernel := distuv.Normal{Mu: 0, Sigma: sigma * math.Pow(float64(n), -0.2)}

	lo := floats.Min(samples)
	hi := floats.Max(samples)
	step := (hi - lo) / float64(points-1)

	ys := make([]float64, points)
	ds := make([]float64, points)
	for i := range ys {
		y := lo + float64(i)*step
		sum := 0.0
		for _, s := range samples {
			sum += kernel.Prob(y - s)
		}
		ys[i] = y
		ds[i] = sum / float64(n)
	}
	return densityCurve{Y: ys, D: ds}
}
