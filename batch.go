package wavetable

import (
	"fmt"

	"github.com/tphakala/go-wavetable/internal/engine"
)

// BatchLookup overwrites each phases[i] with the interpolated sample at
// (numbers[i], phases[i]). numbers is read-only and never modified.
//
// The aliasing is deliberate: each phase element is read once and then
// overwritten with its result, which lets synthesis loops reuse the
// phase accumulator buffer as the output buffer. Elements are
// independent, so iteration order carries no meaning.
//
// All preconditions — matching buffer lengths, finite elements, a valid
// table and recognized enum tags — are checked before any element is
// written; on error the phase buffer is untouched. A zero-column table
// produces no values and leaves phases unchanged.
//
// Processing is sequential; use [Sampler.Process] for the concurrent
// batch path.
func (t *Table) BatchLookup(numbers, phases []float32, kernel Kernel, boundary Boundary) error {
	return t.batch(numbers, phases, kernel, boundary, 1)
}

// batch validates and runs a batch lookup with the given worker count.
func (t *Table) batch(numbers, phases []float32, kernel Kernel, boundary Boundary, workers int) error {
	if err := t.validate(); err != nil {
		return err
	}
	if err := validateCall(kernel, boundary); err != nil {
		return err
	}
	if len(numbers) != len(phases) {
		return fmt.Errorf("%w: %d numbers, %d phases", ErrLengthMismatch, len(numbers), len(phases))
	}
	if err := validateFinite("numbers", numbers); err != nil {
		return err
	}
	if err := validateFinite("phases", phases); err != nil {
		return err
	}

	// No columns means no value to produce for any element; the
	// single-point lookup reports the same condition as ok=false.
	if t.cols == 0 || len(phases) == 0 {
		return nil
	}

	engine.Batch(t.view(), numbers, phases, kernelToEngine(kernel), boundaryToEngine(boundary), workers)
	return nil
}

// validateFinite rejects NaN and Inf elements before any index
// computation can see them.
func validateFinite(name string, buf []float32) error {
	for i, v := range buf {
		if !isFinite(float64(v)) {
			return fmt.Errorf("%w: %s[%d] is %v", ErrNonFinite, name, i, v)
		}
	}
	return nil
}
