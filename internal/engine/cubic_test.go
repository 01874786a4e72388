package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const cubicTolerance = 1e-12

// TestCubicCoefficients_Identities verifies the Hermite endpoint
// conditions: value and tangent at both ends of the segment.
func TestCubicCoefficients_Identities(t *testing.T) {
	samples := [][4]float64{
		{0, 1, 2, 3},
		{1, -1, 1, -1},
		{0.5, 0.25, -0.75, 2},
		{-3, 7, 0, 0.125},
	}

	for _, s := range samples {
		ym1, y0, y1, y2 := s[0], s[1], s[2], s[3]
		a, b, c, d := CubicCoefficients(ym1, y0, y1, y2)

		// p(0) = y0
		assert.InDelta(t, y0, d, cubicTolerance)
		// p(1) = y1
		assert.InDelta(t, y1, a+b+c+d, cubicTolerance)
		// p'(0) = central difference at y0
		assert.InDelta(t, (y1-ym1)/2, c, cubicTolerance)
		// p'(1) = central difference at y1
		assert.InDelta(t, (y2-y0)/2, 3*a+2*b+c, cubicTolerance)
	}
}

// TestCubicInterpolate_Endpoints verifies exact sample reproduction at
// blend 0 and 1.
func TestCubicInterpolate_Endpoints(t *testing.T) {
	assert.InDelta(t, 0.25, CubicInterpolate(1, 0.25, -0.5, 2, 0), cubicTolerance)
	assert.InDelta(t, -0.5, CubicInterpolate(1, 0.25, -0.5, 2, 1), cubicTolerance)
}

// TestCubicInterpolate_ReproducesLine verifies collinear samples yield
// the line itself: degree-1 data has zero cubic and quadratic terms.
func TestCubicInterpolate_ReproducesLine(t *testing.T) {
	// y = 2x + 1 sampled at x = -1, 0, 1, 2
	a, b, c, d := CubicCoefficients(-1, 1, 3, 5)
	assert.InDelta(t, 0, a, cubicTolerance)
	assert.InDelta(t, 0, b, cubicTolerance)
	assert.InDelta(t, 2, c, cubicTolerance)
	assert.InDelta(t, 1, d, cubicTolerance)

	for _, blend := range []float64{0, 0.125, 0.3, 0.5, 0.77, 1} {
		assert.InDelta(t, 2*blend+1, CubicInterpolate(-1, 1, 3, 5, blend), cubicTolerance)
	}
}

// TestCubicInterpolate_ReproducesQuadratic verifies the
// central-difference tangent estimate is exact for degree-2 data.
func TestCubicInterpolate_ReproducesQuadratic(t *testing.T) {
	// y = x^2 sampled at x = -1, 0, 1, 2
	for _, blend := range []float64{0, 0.2, 0.5, 0.9, 1} {
		assert.InDelta(t, blend*blend, CubicInterpolate(1, 0, 1, 4, blend), cubicTolerance)
	}
}

// TestCubicInterpolate_SymmetricBump verifies symmetry: reversing the
// stencil and the blend direction yields the same value.
func TestCubicInterpolate_SymmetricBump(t *testing.T) {
	ym1, y0, y1, y2 := 0.0, 1.0, 1.0, 0.0
	for _, blend := range []float64{0.1, 0.25, 0.4} {
		forward := CubicInterpolate(ym1, y0, y1, y2, blend)
		backward := CubicInterpolate(y2, y1, y0, ym1, 1-blend)
		assert.InDelta(t, forward, backward, cubicTolerance, "blend %v", blend)
	}
}
