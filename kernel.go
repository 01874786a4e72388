package wavetable

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-wavetable/internal/engine"
)

// Kernel enumerates the interpolation methods along the phase axis.
// Row (morph-axis) interpolation is always linear regardless of kernel.
type Kernel int

const (
	// KernelLinear uses bilinear interpolation over a 2x2 stencil.
	// Cheapest; the result is always a convex combination of the four
	// corner samples.
	KernelLinear Kernel = iota

	// KernelCubic fits a 4-point Catmull-Rom cubic along the phase
	// axis of each selected row and blends the two rows linearly.
	// Smoother than linear at roughly twice the per-sample cost.
	KernelCubic
)

// String returns the kernel's string tag.
func (k Kernel) String() string {
	switch k {
	case KernelLinear:
		return "linear"
	case KernelCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// valid reports whether k is a recognized kernel.
func (k Kernel) valid() bool {
	return k == KernelLinear || k == KernelCubic
}

// ParseKernel converts an external string tag to a Kernel.
// Recognized tags are "linear" and "cubic" (case-insensitive).
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(s) {
	case "linear":
		return KernelLinear, nil
	case "cubic":
		return KernelCubic, nil
	default:
		return 0, fmt.Errorf("%w: unknown kernel %q", ErrInvalidConfig, s)
	}
}

// Boundary enumerates the policies for resolving out-of-range
// phase-axis column indices. The morph axis always wraps and has no
// boundary policy.
type Boundary int

const (
	// BoundaryWrap reduces the index modulo the column count, making
	// the phase axis toroidal.
	BoundaryWrap Boundary = iota

	// BoundaryBounce reflects the index off both ends of the row, as
	// if the table were mirrored and repeated (period 2*columns-2; a
	// single-column row always yields its one sample).
	BoundaryBounce

	// BoundaryClamp saturates the index to [0, columns-1].
	BoundaryClamp

	// BoundaryZero yields sample value 0 for out-of-range indices.
	BoundaryZero
)

// String returns the boundary policy's string tag.
func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryBounce:
		return "bounce"
	case BoundaryClamp:
		return "clamp"
	case BoundaryZero:
		return "zero"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// valid reports whether b is a recognized boundary policy.
func (b Boundary) valid() bool {
	return b >= BoundaryWrap && b <= BoundaryZero
}

// ParseBoundary converts an external string tag to a Boundary.
// Recognized tags are "wrap", "bounce", "clamp" and "zero"
// (case-insensitive).
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(s) {
	case "wrap":
		return BoundaryWrap, nil
	case "bounce":
		return BoundaryBounce, nil
	case "clamp":
		return BoundaryClamp, nil
	case "zero":
		return BoundaryZero, nil
	default:
		return 0, fmt.Errorf("%w: unknown boundary policy %q", ErrInvalidConfig, s)
	}
}

// kernelToEngine converts a validated public kernel to its engine
// counterpart.
func kernelToEngine(k Kernel) engine.Kernel {
	if k == KernelCubic {
		return engine.KernelCubic
	}
	return engine.KernelLinear
}

// boundaryToEngine converts a validated public boundary policy to its
// engine counterpart.
func boundaryToEngine(b Boundary) engine.Boundary {
	switch b {
	case BoundaryBounce:
		return engine.BoundaryBounce
	case BoundaryClamp:
		return engine.BoundaryClamp
	case BoundaryZero:
		return engine.BoundaryZero
	default:
		return engine.BoundaryWrap
	}
}
