// Package testutil provides deterministic signal generators and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a sine at freqHz, starting at
// phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate

	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}

	return out
}

// DeterministicNoise returns length samples of uniform noise in
// [-amplitude, amplitude]. The same seed always yields the same samples.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns a length-sample signal that is zero everywhere except for
// a unit spike at pos. An out-of-range pos yields all zeros.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos < 0 || pos >= length {
		return out
	}

	out[pos] = 1

	return out
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ones returns n samples of 1.
func Ones(n int) []float64 {
	return DC(1, n)
}

// Ramp returns a straight line from start to stop over length samples, both
// endpoints included.
func Ramp(start, stop float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(length-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out
}
