package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	wavetable "github.com/tphakala/go-wavetable"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// loadWavetable reads a mono WAV of frame-concatenated single-cycle
// waveforms and builds a table with one row per frame.
func loadWavetable(path string, frameLen int, verbose bool) (*wavetable.Table, error) {
	if frameLen <= 0 {
		return nil, fmt.Errorf("frame length must be positive, got %d", frameLen)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if format.NumChannels != 1 {
		return nil, fmt.Errorf("wavetable must be mono, got %d channels", format.NumChannels)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read table data: %w", err)
	}

	samples := normalizeSamples(buf.Data, int(decoder.BitDepth))
	tbl, err := tableFromSamples(samples, frameLen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if verbose {
		log.Printf("Loaded %d frames of %d samples (%d-bit source)",
			tbl.Rows(), tbl.Columns(), decoder.BitDepth)
	}

	return tbl, nil
}

// tableFromSamples splits a flat sample buffer into fixed-length frames,
// one table row per frame.
func tableFromSamples(samples []float32, frameLen int) (*wavetable.Table, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("table file contains no samples")
	}
	if len(samples)%frameLen != 0 {
		return nil, fmt.Errorf("%d samples is not a multiple of frame length %d",
			len(samples), frameLen)
	}

	return wavetable.New(samples, len(samples)/frameLen, frameLen)
}

// normalizeSamples converts integer PCM samples to float32 in [-1, 1].
func normalizeSamples(data []int, bitDepth int) []float32 {
	invMax := 1.0 / maxValueForDepth(bitDepth)
	out := make([]float32, len(data))
	for i, s := range data {
		out[i] = float32(float64(s) * invMax)
	}
	return out
}

// maxValueForDepth returns the full-scale sample value for a bit depth.
func maxValueForDepth(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// sweepCoords builds the coordinate buffers for one rendered voice: a
// linear morph ramp from morphFrom to morphTo and a phase accumulator
// advancing by phaseInc per sample, kept in [0,1).
func sweepCoords(n int, morphFrom, morphTo, phaseInc, startPhase float64) (numbers, phases []float32) {
	numbers = make([]float32, n)
	phases = make([]float32, n)

	phase := startPhase
	for i := range n {
		t := float64(i) / float64(n)
		numbers[i] = float32(morphFrom + (morphTo-morphFrom)*t)
		phases[i] = float32(phase)

		phase += phaseInc
		if phase >= 1 {
			phase -= 1
		}
	}
	return numbers, phases
}

// toPCM16 converts float32 samples in [-1, 1] to 16-bit integer values,
// clamping anything outside the range.
func toPCM16(samples []float32) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		v := float64(s)
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		out[i] = int(v * maxInt16)
	}
	return out
}

// writeWAV16 writes interleaved 16-bit PCM samples to path.
func writeWAV16(path string, samples []int, sampleRate, channels int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, sampleRate, bitsPerSample16, channels, 1)
	buf := &audio.IntBuffer{
		Data: samples,
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitsPerSample16,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return nil
}
