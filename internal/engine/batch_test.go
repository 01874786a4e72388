package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillCoords fills numbers and phases with deterministic pseudo-random
// coordinates spanning several periods of both axes.
func fillCoords(numbers, phases []float32, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range numbers {
		numbers[i] = float32(rng.Float64()*4 - 2)
		phases[i] = float32(rng.Float64()*3 - 1)
	}
}

// TestBatch_MatchesElementwiseLookup verifies each batch element equals
// an independent single-point lookup.
func TestBatch_MatchesElementwiseLookup(t *testing.T) {
	tbl := rampTable(4, 8)

	const n = 257
	numbers := make([]float32, n)
	phases := make([]float32, n)
	fillCoords(numbers, phases, 1)

	for _, kernel := range []Kernel{KernelLinear, KernelCubic} {
		for _, boundary := range []Boundary{BoundaryWrap, BoundaryBounce, BoundaryClamp, BoundaryZero} {
			want := make([]float32, n)
			for i := range want {
				want[i] = float32(Lookup(tbl, float64(numbers[i]), float64(phases[i]), kernel, boundary))
			}

			got := make([]float32, n)
			copy(got, phases)
			Batch(tbl, numbers, got, kernel, boundary, 1)

			assert.Equal(t, want, got, "kernel=%v boundary=%v", kernel, boundary)
		}
	}
}

// TestBatch_ParallelMatchesSequential verifies the partitioned path is
// bit-identical to the sequential one.
func TestBatch_ParallelMatchesSequential(t *testing.T) {
	tbl := rampTable(8, 16)

	// Above minParallelBatch and deliberately not a multiple of the
	// worker count, so the last partition is short.
	const n = minParallelBatch + 13
	numbers := make([]float32, n)
	phases := make([]float32, n)
	fillCoords(numbers, phases, 2)

	sequential := make([]float32, n)
	copy(sequential, phases)
	Batch(tbl, numbers, sequential, KernelCubic, BoundaryBounce, 1)

	for _, workers := range []int{2, 3, 7, 64, n + 5} {
		parallel := make([]float32, n)
		copy(parallel, phases)
		Batch(tbl, numbers, parallel, KernelCubic, BoundaryBounce, workers)

		require.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

// TestBatch_NumbersUntouched verifies the morph buffer is read-only.
func TestBatch_NumbersUntouched(t *testing.T) {
	tbl := rampTable(4, 8)

	const n = minParallelBatch
	numbers := make([]float32, n)
	phases := make([]float32, n)
	fillCoords(numbers, phases, 3)

	original := make([]float32, n)
	copy(original, numbers)

	Batch(tbl, numbers, phases, KernelLinear, BoundaryWrap, 4)
	assert.Equal(t, original, numbers)
}

// TestBatch_SmallBatchStaysSequential verifies tiny batches work with a
// large worker count (the parallel path is skipped, not misapplied).
func TestBatch_SmallBatchStaysSequential(t *testing.T) {
	tbl := rampTable(2, 4)

	numbers := []float32{0, 0.5, 0.25}
	phases := []float32{0, 0.25, 0.75}
	want := make([]float32, len(phases))
	for i := range want {
		want[i] = float32(Lookup(tbl, float64(numbers[i]), float64(phases[i]), KernelLinear, BoundaryWrap))
	}

	Batch(tbl, numbers, phases, KernelLinear, BoundaryWrap, 16)
	assert.Equal(t, want, phases)
}

// TestBatch_Empty verifies a zero-length batch is a no-op.
func TestBatch_Empty(t *testing.T) {
	tbl := rampTable(2, 4)
	Batch(tbl, nil, nil, KernelCubic, BoundaryZero, 4)
}
