package engine

import (
	"sync"
)

// minParallelBatch is the smallest batch worth splitting across
// goroutines; below this the spawn cost outweighs the lookup work.
const minParallelBatch = 2048

// Batch overwrites each phases[i] with the lookup result for
// (numbers[i], phases[i]). numbers is read-only. Inputs are
// pre-validated by the public package: equal lengths, finite values,
// valid table shape with at least one column.
//
// Elements are independent (each reads shared immutable inputs and
// writes only its own slot), so with workers > 1 the index range is
// partitioned across goroutines with no synchronization beyond the
// partition itself. Results are bit-identical to the sequential path.
func Batch(t Table, numbers, phases []float32, kernel Kernel, boundary Boundary, workers int) {
	n := len(phases)
	if workers <= 1 || n < minParallelBatch {
		batchRange(t, numbers, phases, kernel, boundary, 0, n)
		return
	}

	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			batchRange(t, numbers, phases, kernel, boundary, lo, hi)
		}(start, end)
	}
	wg.Wait()
}

// batchRange processes elements [lo, hi) sequentially.
func batchRange(t Table, numbers, phases []float32, kernel Kernel, boundary Boundary, lo, hi int) {
	for i := lo; i < hi; i++ {
		phases[i] = float32(Lookup(t, float64(numbers[i]), float64(phases[i]), kernel, boundary))
	}
}
