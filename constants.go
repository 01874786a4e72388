package wavetable

// Worker limits
const (
	maxWorkers = 256 // Maximum goroutines for a parallel batch
)

// Interpolation stencil widths (phase-axis samples read per row)
const (
	linearStencilWidth = 2
	cubicStencilWidth  = 4
)

// Memory constants
const (
	bytesPerFloat32 = 4 // Size of float32 in bytes
)
