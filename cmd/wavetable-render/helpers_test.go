package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWavetable_FileNotFound(t *testing.T) {
	_, err := loadWavetable("/nonexistent/table.wav", 256, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open table file")
}

func TestLoadWavetable_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = loadWavetable(invalidFile, 256, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestLoadWavetable_RoundTrip(t *testing.T) {
	// Write a tiny two-frame table through the same encoder the render
	// path uses, then read it back.
	tmpDir := t.TempDir()
	tablePath := filepath.Join(tmpDir, "table.wav")

	const frameLen = 8
	samples := make([]int, 2*frameLen)
	for i := range samples {
		samples[i] = i * 100
	}
	require.NoError(t, writeWAV16(tablePath, samples, 44100, 1))

	tbl, err := loadWavetable(tablePath, frameLen, false)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, frameLen, tbl.Columns())

	// Spot-check a sample survived normalization.
	assert.InDelta(t, 100.0/maxInt16, float64(tbl.At(0, 1)), 1e-6)
}

func TestTableFromSamples(t *testing.T) {
	tbl, err := tableFromSamples(make([]float32, 512), 256)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 256, tbl.Columns())

	_, err = tableFromSamples(make([]float32, 500), 256)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a multiple of frame length")

	_, err = tableFromSamples(nil, 256)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no samples")
}

func TestNormalizeSamples(t *testing.T) {
	out := normalizeSamples([]int{0, 32767, -32767}, 16)
	require.Len(t, out, 3)
	assert.Equal(t, float32(0), out[0])
	assert.InDelta(t, 1.0, float64(out[1]), 1e-6)
	assert.InDelta(t, -1.0, float64(out[2]), 1e-6)

	out = normalizeSamples([]int{8388607}, 24)
	assert.InDelta(t, 1.0, float64(out[0]), 1e-6)
}

func TestSweepCoords(t *testing.T) {
	const n = 1000
	numbers, phases := sweepCoords(n, 0.25, 0.75, 0.01, 0)
	require.Len(t, numbers, n)
	require.Len(t, phases, n)

	assert.InDelta(t, 0.25, float64(numbers[0]), 1e-6)
	assert.InDelta(t, 0.75, float64(numbers[n-1]), 1e-3)

	for i, p := range phases {
		assert.GreaterOrEqual(t, p, float32(0), "phase %d", i)
		assert.Less(t, p, float32(1), "phase %d", i)
	}

	// Phase advances by the increment until it wraps.
	assert.InDelta(t, 0.01, float64(phases[1]), 1e-6)
	assert.InDelta(t, 0.02, float64(phases[2]), 1e-6)
}

func TestToPCM16(t *testing.T) {
	out := toPCM16([]float32{0, 1, -1, 2, -2, 0.5})
	assert.Equal(t, []int{0, 32767, -32767, 32767, -32767, 16383}, out)
}

func TestWriteWAV16(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "out.wav")

	require.NoError(t, writeWAV16(outPath, []int{0, 100, -100, 200}, 48000, 2))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	require.True(t, decoder.IsValidFile())
	format := decoder.Format()
	assert.Equal(t, 48000, format.SampleRate)
	assert.Equal(t, 2, format.NumChannels)
}

func TestWriteWAV16_InvalidDirectory(t *testing.T) {
	err := writeWAV16("/nonexistent/dir/out.wav", []int{0}, 44100, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
