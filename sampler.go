package wavetable

import (
	"fmt"
	"runtime"
	"sync"
)

// Config holds sampler configuration.
type Config struct {
	// Kernel selects the interpolation method along the phase axis.
	Kernel Kernel

	// Boundary selects how out-of-range phase-axis columns are
	// resolved. The morph axis always wraps regardless of this
	// setting.
	Boundary Boundary

	// EnableParallel enables concurrent batch processing. Batch
	// elements are independent, so the index range is partitioned
	// across goroutines with results bit-identical to sequential
	// processing. Small batches are processed sequentially regardless.
	EnableParallel bool

	// Workers is the number of goroutines used when EnableParallel is
	// set. Zero selects runtime.GOMAXPROCS(0).
	Workers int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateCall(c.Kernel, c.Boundary); err != nil {
		return err
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}

	return nil
}

// Sampler is a pre-validated lookup configuration. It holds no mutable
// state: a single sampler may be shared across goroutines, and per-call
// enum validation is paid once at construction instead of per sample.
type Sampler struct {
	config  Config
	workers int
}

// NewSampler creates a sampler with the specified configuration.
func NewSampler(config *Config) (*Sampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	workers := 1
	if config.EnableParallel {
		workers = config.Workers
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
	}

	return &Sampler{config: *config, workers: workers}, nil
}

// Lookup returns the interpolated sample at (number, phase) using the
// sampler's kernel and boundary policy. See [Table.Lookup].
func (s *Sampler) Lookup(t *Table, number, phase float64) (float64, bool, error) {
	return t.Lookup(number, phase, s.config.Kernel, s.config.Boundary)
}

// Process overwrites each phases[i] with the interpolated sample at
// (numbers[i], phases[i]), like [Table.BatchLookup], processing the
// batch concurrently when the sampler was configured with
// EnableParallel. numbers is read-only.
func (s *Sampler) Process(t *Table, numbers, phases []float32) error {
	return t.batch(numbers, phases, s.config.Kernel, s.config.Boundary, s.workers)
}

// ProcessMulti processes several independent voice buffers in one call.
// numbers[v] and phases[v] form the batch for voice v; each voice obeys
// the [Table.BatchLookup] contract. Every voice pair is validated
// before any element of any voice is written.
//
// With EnableParallel set, voices are processed concurrently (one
// goroutine per voice); otherwise they are processed in order.
func (s *Sampler) ProcessMulti(t *Table, numbers, phases [][]float32) error {
	if len(numbers) != len(phases) {
		return fmt.Errorf("%w: %d number buffers, %d phase buffers",
			ErrLengthMismatch, len(numbers), len(phases))
	}
	if err := t.validate(); err != nil {
		return err
	}

	// Validate every voice up front so a bad voice cannot leave
	// earlier voices mutated.
	for v := range numbers {
		if len(numbers[v]) != len(phases[v]) {
			return fmt.Errorf("%w: voice %d has %d numbers, %d phases",
				ErrLengthMismatch, v, len(numbers[v]), len(phases[v]))
		}
		if err := validateFinite(fmt.Sprintf("voice %d numbers", v), numbers[v]); err != nil {
			return err
		}
		if err := validateFinite(fmt.Sprintf("voice %d phases", v), phases[v]); err != nil {
			return err
		}
	}

	if !s.config.EnableParallel || len(numbers) <= 1 {
		for v := range numbers {
			if err := s.Process(t, numbers[v], phases[v]); err != nil {
				return fmt.Errorf("voice %d: %w", v, err)
			}
		}
		return nil
	}

	// Voices share only immutable inputs and write disjoint buffers,
	// so they run concurrently without coordination. Validation has
	// already passed, leaving nothing for a voice to fail on.
	var wg sync.WaitGroup
	for v := range numbers {
		wg.Add(1)
		go func(voice int) {
			defer wg.Done()
			// Each voice runs sequentially; parallelism comes from
			// the voice fan-out.
			_ = t.batch(numbers[voice], phases[voice], s.config.Kernel, s.config.Boundary, 1)
		}(v)
	}
	wg.Wait()

	return nil
}

// Info describes a sampler's configuration.
type Info struct {
	// Algorithm names the interpolation scheme in use.
	Algorithm string

	// StencilWidth is the number of phase-axis samples each lookup
	// reads per row.
	StencilWidth int

	// ParallelEnabled indicates concurrent batch processing.
	ParallelEnabled bool

	// Workers is the goroutine count used for parallel batches.
	Workers int
}

// GetInfo returns information about the sampler.
func (s *Sampler) GetInfo() Info {
	info := Info{
		Algorithm:       "bilinear",
		StencilWidth:    linearStencilWidth,
		ParallelEnabled: s.config.EnableParallel,
		Workers:         s.workers,
	}
	if s.config.Kernel == KernelCubic {
		info.Algorithm = "bicubic (Catmull-Rom)"
		info.StencilWidth = cubicStencilWidth
	}
	return info
}
