package conv

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Correlate computes the full cross-correlation of a and b, which is
// convolution against the time-reversed second input:
// corr(a, b) = conv(a, reverse(b)).
//
// The result has length len(a) + len(b) - 1; output index k holds lag
// k - (len(b) - 1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Convolve(a, reversed(b))
}

// CorrelateDirect computes cross-correlation through the direct path only.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Direct(a, reversed(b))
}

// CorrelateMode computes cross-correlation trimmed to the given mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return cropToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate correlates a with itself. The result has length
// 2*len(a) - 1 and zero lag sits at index len(a)-1.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// AutoCorrelateNormalized computes auto-correlation scaled so the zero-lag
// value is 1. An all-zero input is returned unscaled.
func AutoCorrelateNormalized(a []float64) ([]float64, error) {
	result, err := AutoCorrelate(a)
	if err != nil {
		return nil, err
	}

	normalizeBy(result, result[len(a)-1])

	return result, nil
}

// CorrelateNormalized computes cross-correlation scaled by the product of
// the inputs' L2 norms, bounding the output to [-1, 1].
func CorrelateNormalized(a, b []float64) ([]float64, error) {
	result, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	normalizeBy(result, l2Norm(a)*l2Norm(b))

	return result, nil
}

// CorrelateFFT computes cross-correlation as IFFT(FFT(a) * conj(FFT(b))).
// Beats the direct path once the inputs get long.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to plan FFT: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward transform failed: %w", err)
	}
	if err := plan.Forward(bPadded, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward transform failed: %w", err)
	}

	for i := range aPadded {
		aPadded[i] *= cmplx.Conj(bPadded[i])
	}

	if err := plan.Inverse(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("conv: inverse transform failed: %w", err)
	}

	// The circular result keeps lags 0..n-1 at the head while negative lags
	// wrap to the tail; reorder into ascending linear lag.
	result := make([]float64, n+m-1)
	for lag := 0; lag < n; lag++ {
		result[m-1+lag] = real(aPadded[lag])
	}
	for neg := 1; neg < m; neg++ {
		result[m-1-neg] = real(aPadded[fftSize-neg])
	}

	return result, nil
}

// FindPeak reports the index and value of the maximum in a correlation
// result, or index -1 for empty input. Ties keep the earliest index.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i := 1; i < len(corr); i++ {
		if corr[i] > value {
			index, value = i, corr[i]
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to its lag,
// i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag to its position in the correlation result.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func reversed(x []float64) []float64 {
	out := append([]float64(nil), x...)
	slices.Reverse(out)

	return out
}

func normalizeBy(x []float64, denom float64) {
	if denom == 0 {
		return
	}

	for i := range x {
		x[i] /= denom
	}
}

func l2Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum)
}
