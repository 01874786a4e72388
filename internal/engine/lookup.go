package engine

import (
	"math"
)

// maxColumnMagnitude bounds the scaled column position before the
// float-to-int conversion. Above 2^52 a float64 has no fractional part
// anyway, and clamping keeps the conversion well defined on every
// platform. The subsequent boundary resolution maps any clamped index
// to an in-range column.
const maxColumnMagnitude = float64(1 << 52)

// Lookup returns the interpolated sample at the fractional coordinates
// (number, phase). number selects a fractional row (morph axis) and is
// always wrapped into [0,1); phase is scaled by the column count without
// wrapping, with any out-of-range stencil column resolved by boundary.
//
// Preconditions (enforced by the public package): t.Rows >= 1,
// t.Cols >= 1, number and phase finite, kernel and boundary valid.
func Lookup(t Table, number, phase float64, kernel Kernel, boundary Boundary) float64 {
	row1, row2, rowBlend := selectRows(number, t.Rows)
	col, colBlend := splitColumn(phase, t.Cols)

	r1 := t.Row(row1)
	r2 := t.Row(row2)

	var top, bottom float64
	if kernel == KernelCubic {
		top = cubicRow(r1, col, colBlend, boundary)
		bottom = cubicRow(r2, col, colBlend, boundary)
	} else {
		top = linearRow(r1, col, colBlend, boundary)
		bottom = linearRow(r2, col, colBlend, boundary)
	}

	// Row interpolation is always linear, even for the cubic kernel.
	return bottom*rowBlend + top*(1-rowBlend)
}

// selectRows maps a morph coordinate to the two rows it falls between
// and the blend factor toward the second row. The morph axis is
// toroidal: the coordinate is wrapped into [0,1) with sign correction
// before scaling, and both row indices wrap modulo rows.
func selectRows(number float64, rows int) (row1, row2 int, blend float64) {
	frac := math.Mod(number, 1)
	if frac < 0 {
		frac++
	}

	frow := frac * float64(rows)
	floor := math.Floor(frow)

	// frac may round to exactly 1.0 for tiny negative inputs, putting
	// frow at rows; the modulo folds that back to row 0 with blend 0.
	row1 = int(floor) % rows
	row2 = (row1 + 1) % rows
	blend = frow - floor
	return row1, row2, blend
}

// splitColumn maps a phase coordinate to the base column of the
// interpolation stencil and the blend factor toward the next column.
// The phase axis is deliberately not wrapped: callers own the nominal
// [0,1) range, and out-of-range columns are the boundary policy's job.
func splitColumn(phase float64, cols int) (col int, blend float64) {
	fcol := phase * float64(cols)
	if fcol > maxColumnMagnitude {
		fcol = maxColumnMagnitude
	} else if fcol < -maxColumnMagnitude {
		fcol = -maxColumnMagnitude
	}

	floor := math.Floor(fcol)
	return int(floor), fcol - floor
}

// linearRow interpolates linearly between columns col and col+1 of row.
func linearRow(row []float32, col int, blend float64, boundary Boundary) float64 {
	v1 := float64(Fetch(row, col, boundary))
	v2 := float64(Fetch(row, col+1, boundary))
	return v2*blend + v1*(1-blend)
}

// cubicRow fits a Catmull-Rom cubic through the four columns centered
// on the phase position and evaluates it at the column blend.
func cubicRow(row []float32, col int, blend float64, boundary Boundary) float64 {
	ym1 := float64(Fetch(row, col-1, boundary))
	y0 := float64(Fetch(row, col, boundary))
	y1 := float64(Fetch(row, col+1, boundary))
	y2 := float64(Fetch(row, col+2, boundary))
	return CubicInterpolate(ym1, y0, y1, y2, blend)
}
