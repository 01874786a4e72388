// Package engine implements the wavetable interpolation kernels.
//
// The engine operates on pre-validated inputs: callers (the public
// wavetable package) are responsible for table shape, enum and finiteness
// checks before any function here is invoked. Keeping validation out of
// this package keeps the per-element cost of the batch path minimal.
package engine

// Kernel selects the interpolation method along the phase axis.
type Kernel int

const (
	// KernelLinear uses bilinear interpolation over a 2x2 stencil.
	KernelLinear Kernel = iota

	// KernelCubic uses a 4-point Catmull-Rom cubic fit along the phase
	// axis of each selected row, with linear blending across rows.
	KernelCubic
)

// Boundary selects how out-of-range phase-axis column indices are resolved.
// The morph (row) axis always wraps and is not affected by this setting.
type Boundary int

const (
	// BoundaryWrap reduces the index modulo the column count (toroidal).
	BoundaryWrap Boundary = iota

	// BoundaryBounce reflects the index off both table ends, as if the
	// row were mirrored and repeated with period 2*columns-2.
	BoundaryBounce

	// BoundaryClamp saturates the index to [0, columns-1].
	BoundaryClamp

	// BoundaryZero yields sample value 0 for any out-of-range index.
	BoundaryZero
)

// Table is a borrowed view of a contiguous row-major float32 grid.
// Rows must be >= 1 and len(Data) must equal Rows*Cols; the public
// package guarantees both.
type Table struct {
	Data []float32
	Rows int
	Cols int
}

// Row returns the samples of row r. r must be in [0, Rows).
func (t Table) Row(r int) []float32 {
	return t.Data[r*t.Cols : (r+1)*t.Cols]
}
