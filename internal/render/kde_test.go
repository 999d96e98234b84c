package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKdeCurveZeroVariance tests that constant and single-sample input
// collapses to a single grid point.
func TestKdeCurveZeroVariance(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"single sample", []float64{3.25}, 3.25},
		{"constant samples", []float64{5, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := kdeCurve(tt.samples, violinPoints)
			require.Len(t, curve.Y, 1)
			assert.Equal(t, tt.want, curve.Y[0])
			assert.Equal(t, []float64{1}, curve.D)
		})
	}
}

// TestKdeCurveShape tests grid coverage and symmetry of the estimate.
func TestKdeCurveShape(t *testing.T) {
	curve := kdeCurve([]float64{1, 2, 3}, 100)

	require.Len(t, curve.Y, 100)
	require.Len(t, curve.D, 100)
	assert.InDelta(t, 1.0, curve.Y[0], 1e-12)
	assert.InDelta(t, 3.0, curve.Y[99], 1e-12)

	// Symmetric samples give a symmetric density with its peak inside.
	for i := 0; i < 50; i++ {
		assert.InDelta(t, curve.D[i], curve.D[99-i], 1e-12)
	}
	for _, d := range curve.D {
		assert.Positive(t, d)
	}
	assert.Greater(t, curve.D[50], curve.D[0])
}

// TestKdeCurveBandwidth tests the density value at the grid edge against the
// closed form for two samples under Scott's rule.
func TestKdeCurveBandwidth(t *testing.T) {
	curve := kdeCurve([]float64{1, 3}, 100)

	// sigma = sqrt(2), h = sigma * 2^(-1/5); density at y=1 is the mean of
	// the kernel at distance 0 and at distance 2.
	assert.InDelta(t, 0.205319, curve.D[0], 1e-4)
	assert.InDelta(t, curve.D[0], curve.D[99], 1e-12)
}
