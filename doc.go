// Package wavetable provides a 2D wavetable interpolation engine for
// audio synthesis in pure Go.
//
// A wavetable is an immutable, row-major grid of float32 samples. Each
// row holds one period of a waveform (the phase axis); the rows form a
// family of related waveforms that blend into one another (the morph
// axis). Given fractional (morph, phase) coordinates the engine returns
// an interpolated amplitude, either for a single point or element-wise
// over whole buffers for use in synthesis loops.
//
// # Features
//
//   - Bilinear and bicubic (Catmull-Rom) interpolation kernels
//   - Four phase-axis boundary policies: wrap, bounce, clamp, zero
//   - Always-toroidal morph axis, independent of boundary policy
//   - In-place batch lookup over parallel morph/phase buffers
//   - Optional concurrent batch processing across goroutines,
//     bit-identical to sequential processing
//   - Pure Go, no CGO, no allocation in the lookup paths
//
// # Quick Start
//
// One-shot lookups need only a table:
//
//	table, err := wavetable.FromRows(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, ok, err := table.Lookup(0.25, 0.5, wavetable.KernelCubic, wavetable.BoundaryWrap)
//
// For synthesis loops, configure a sampler once and process buffers in
// place:
//
//	s, err := wavetable.NewSampler(&wavetable.Config{
//	    Kernel:         wavetable.KernelCubic,
//	    Boundary:       wavetable.BoundaryWrap,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// phases is overwritten with the interpolated samples.
//	if err := s.Process(table, numbers, phases); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinates
//
// The morph coordinate may be any finite value; it is wrapped into
// [0,1) before scaling by the row count, so morph and morph+1 select
// the same rows. The phase coordinate is nominally in [0,1) and is the
// caller's responsibility; it is scaled by the column count without
// wrapping, and any interpolation-stencil column that falls outside the
// table is resolved by the per-call [Boundary] policy. Non-finite
// coordinates are rejected before they can index memory.
//
// # Batch Semantics
//
// [Table.BatchLookup] and [Sampler.Process] deliberately alias one
// input with the output: each element of the phase buffer is read once
// and then overwritten with its lookup result, while the morph buffer
// is never modified. Length mismatches and non-finite elements fail the
// whole call before any element is written.
//
// # Thread Safety
//
// Tables are immutable after construction and samplers hold no mutable
// state, so both may be shared freely across goroutines. Concurrent
// calls must not share an output phase buffer.
package wavetable
