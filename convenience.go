package wavetable

// LookupLinear is shorthand for a single bilinear lookup.
// See [Table.Lookup] for the coordinate and error contract.
func LookupLinear(t *Table, number, phase float64, boundary Boundary) (float64, bool, error) {
	return t.Lookup(number, phase, KernelLinear, boundary)
}

// LookupCubic is shorthand for a single bicubic lookup.
// See [Table.Lookup] for the coordinate and error contract.
func LookupCubic(t *Table, number, phase float64, boundary Boundary) (float64, bool, error) {
	return t.Lookup(number, phase, KernelCubic, boundary)
}

// NewLinearSampler creates a sequential sampler using the linear kernel
// and the given boundary policy.
func NewLinearSampler(boundary Boundary) (*Sampler, error) {
	return NewSampler(&Config{
		Kernel:   KernelLinear,
		Boundary: boundary,
	})
}

// NewCubicSampler creates a sequential sampler using the cubic kernel
// and the given boundary policy.
func NewCubicSampler(boundary Boundary) (*Sampler, error) {
	return NewSampler(&Config{
		Kernel:   KernelCubic,
		Boundary: boundary,
	})
}

// NewParallelSampler creates a sampler that processes batches
// concurrently across runtime.GOMAXPROCS goroutines.
func NewParallelSampler(kernel Kernel, boundary Boundary) (*Sampler, error) {
	return NewSampler(&Config{
		Kernel:         kernel,
		Boundary:       boundary,
		EnableParallel: true,
	})
}
