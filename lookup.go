package wavetable

import (
	"fmt"
	"math"

	"github.com/tphakala/go-wavetable/internal/engine"
)

// Lookup returns the interpolated sample at the fractional coordinates
// (number, phase).
//
// number is the morph coordinate: any finite value, wrapped into [0,1)
// before scaling by the row count, so the morph axis is toroidal for
// every boundary policy. phase is the phase coordinate, nominally in
// [0,1); it is scaled by the column count without wrapping, and stencil
// columns outside the table are resolved by boundary.
//
// ok is false only for the degenerate zero-column table, where no value
// exists. Non-finite coordinates and unrecognized kernel or boundary
// tags are precondition violations and return an error.
func (t *Table) Lookup(number, phase float64, kernel Kernel, boundary Boundary) (value float64, ok bool, err error) {
	if err := t.validate(); err != nil {
		return 0, false, err
	}
	if err := validateCall(kernel, boundary); err != nil {
		return 0, false, err
	}
	if !isFinite(number) {
		return 0, false, fmt.Errorf("%w: number is %v", ErrNonFinite, number)
	}
	if !isFinite(phase) {
		return 0, false, fmt.Errorf("%w: phase is %v", ErrNonFinite, phase)
	}

	if t.cols == 0 {
		return 0, false, nil
	}

	value = engine.Lookup(t.view(), number, phase, kernelToEngine(kernel), boundaryToEngine(boundary))
	return value, true, nil
}

// Fetch resolves a possibly out-of-range column index against a single
// table row per the given boundary policy and returns the sample at the
// resolved position. The row must contain at least one sample.
//
// This is the same routine both interpolation kernels use for every
// column access; it is exposed for callers composing their own stencils.
func Fetch(row []float32, index int, boundary Boundary) (float32, error) {
	if len(row) == 0 {
		return 0, fmt.Errorf("%w: row must contain at least one sample", ErrInvalidTable)
	}
	if !boundary.valid() {
		return 0, fmt.Errorf("%w: unknown boundary policy %v", ErrInvalidConfig, boundary)
	}

	return engine.Fetch(row, index, boundaryToEngine(boundary)), nil
}

// CubicInterpolate evaluates a Catmull-Rom cubic through four evenly
// spaced samples at blend in [0,1], measured from y0 toward y1. The
// endpoint tangents are central differences: (y1-ym1)/2 and (y2-y0)/2.
func CubicInterpolate(ym1, y0, y1, y2, blend float64) float64 {
	return engine.CubicInterpolate(ym1, y0, y1, y2, blend)
}

// CubicCoefficients returns the coefficients of the Catmull-Rom cubic
// a*t^3 + b*t^2 + c*t + d through four evenly spaced samples, for
// callers that evaluate the polynomial themselves.
func CubicCoefficients(ym1, y0, y1, y2 float64) (a, b, c, d float64) {
	return engine.CubicCoefficients(ym1, y0, y1, y2)
}

// view returns the engine's borrowed view of the table.
func (t *Table) view() engine.Table {
	return engine.Table{Data: t.data, Rows: t.rows, Cols: t.cols}
}

// validateCall checks per-call enum tags.
func validateCall(kernel Kernel, boundary Boundary) error {
	if !kernel.valid() {
		return fmt.Errorf("%w: unknown kernel %v", ErrInvalidConfig, kernel)
	}
	if !boundary.valid() {
		return fmt.Errorf("%w: unknown boundary policy %v", ErrInvalidConfig, boundary)
	}
	return nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
