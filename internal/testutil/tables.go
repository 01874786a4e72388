package testutil

import (
	"math"
)

// SineToSawRows builds rows that morph from a sine wave (row 0) toward
// a sawtooth (last row). Handy for tests that need a realistic morphing
// table rather than synthetic ramps.
func SineToSawRows(rows, cols int) [][]float32 {
	out := make([][]float32, rows)
	for r := range out {
		blend := 0.0
		if rows > 1 {
			blend = float64(r) / float64(rows-1)
		}
		row := make([]float32, cols)
		for c := range row {
			phase := float64(c) / float64(cols)
			sine := math.Sin(2 * math.Pi * phase)
			saw := 2*phase - 1
			row[c] = float32(sine*(1-blend) + saw*blend)
		}
		out[r] = row
	}
	return out
}

// RampRow returns [1, 2, ..., n] as float32, matching the concrete
// boundary-policy examples used across the test suite.
func RampRow(n int) []float32 {
	row := make([]float32, n)
	for i := range row {
		row[i] = float32(i + 1)
	}
	return row
}

// ConstantRows returns rows x cols filled with value.
func ConstantRows(rows, cols int, value float32) [][]float32 {
	out := make([][]float32, rows)
	for r := range out {
		row := make([]float32, cols)
		for c := range row {
			row[c] = value
		}
		out[r] = row
	}
	return out
}
