package engine

// Fetch resolves a possibly out-of-range column index against a single
// table row and returns the sample at the resolved position.
//
// index may be any signed value; boundary decides how indices outside
// [0, len(row)) are mapped. len(row) must be >= 1 — the zero-column case
// is intercepted by callers before any fetch happens. This function is
// the only place boundary semantics live; both interpolation kernels
// route every column access through it.
func Fetch(row []float32, index int, boundary Boundary) float32 {
	n := len(row)

	switch boundary {
	case BoundaryWrap:
		return row[((index%n)+n)%n]

	case BoundaryBounce:
		// A single sample has nothing to bounce between.
		if n == 1 {
			return row[0]
		}
		// Reflection has period 2n-2; reduce to [0, period), then fold
		// the mirrored half back. The endpoints are visited once per
		// period, interior samples twice.
		period := 2*n - 2
		i := ((index % period) + period) % period
		if i >= n {
			i = period - i
		}
		return row[i]

	case BoundaryClamp:
		if index < 0 {
			return row[0]
		}
		if index >= n {
			return row[n-1]
		}
		return row[index]

	case BoundaryZero:
		if index < 0 || index >= n {
			return 0
		}
		return row[index]
	}

	// Unreachable for validated boundaries; callers convert external
	// tags before reaching the engine.
	return 0
}
