// Package testutil provides reusable test helpers for wavetable tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// Default tolerances for various test scenarios.
const (
	// ExactTolerance is used where results must match up to a single
	// rounding step of the blend arithmetic.
	ExactTolerance = 1e-12

	// InterpTolerance covers accumulated float32->float64 conversion
	// error in interpolated results.
	InterpTolerance = 1e-6
)

// ToFloat64 converts a float32 slice for use with gonum helpers.
func ToFloat64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// Bounds returns the minimum and maximum of a float32 slice.
func Bounds(s []float32) (lo, hi float64) {
	s64 := ToFloat64(s)
	return floats.Min(s64), floats.Max(s64)
}

// AssertInRange verifies that value lies within [lo, hi].
func AssertInRange(t *testing.T, value, lo, hi float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < lo || value > hi {
		return assert.Fail(t, "value out of range",
			"value %g is outside [%g, %g]", value, lo, hi)
	}
	return true
}

// AssertAllFinite verifies that no element is NaN or Inf.
func AssertAllFinite(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertEqualSlices verifies two float32 slices are element-wise equal
// within tolerance, using exact comparison when tolerance is 0.
func AssertEqualSlices(t *testing.T, want, got []float32, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	if tolerance == 0 {
		return assert.Equal(t, want, got)
	}
	return assert.True(t, floats.EqualApprox(ToFloat64(want), ToFloat64(got), tolerance),
		"slices differ beyond tolerance %g", tolerance)
}
