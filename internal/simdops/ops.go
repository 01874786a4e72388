// Package simdops wraps the SIMD-accelerated float32 vector operations
// used by the rendering tools.
//
// The lookup engine itself stays scalar: its per-element table gathers
// do not map onto these vector primitives, and prescaling coordinate
// buffers in float32 would change results relative to the single-point
// path. Post-processing of rendered sample buffers vectorizes cleanly.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f32"
)

// Ops provides SIMD-accelerated float32 operations.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	Scale func(dst, a []float32, s float32)

	// Sum returns the sum of all elements.
	Sum func(a []float32) float32

	// Interleave2 interleaves two slices:
	// dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float32)
}

var ops = Ops{
	Scale:       f32.Scale,
	Sum:         f32.Sum,
	Interleave2: f32.Interleave2,
}

// Float32Ops returns the float32 SIMD operations.
func Float32Ops() *Ops {
	return &ops
}

// CPUInfo describes the SIMD instruction set in use.
func CPUInfo() string {
	return cpu.Info()
}
