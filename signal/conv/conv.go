// Package conv implements linear and circular convolution plus correlation.
//
// Three strategies cover the usual trade-offs:
//
//   - Direct time-domain convolution, O(N*M), for short kernels
//   - One-shot FFT convolution for medium-sized pairs
//   - Overlap-add block convolution for long signals with a fixed kernel
//
// Convolve chooses between the direct and overlap-add paths by kernel
// length. Output trimming follows the full/same/valid conventions: full
// keeps every sample, same centers a window of len(a) samples, valid keeps
// only the region where the inputs overlap completely.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Mode selects how much of a convolution or correlation result to keep.
type Mode int

const (
	// ModeFull keeps the whole result, length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame keeps a window of len(a) samples centered in the full result.
	ModeSame

	// ModeValid keeps only samples where the inputs fully overlap,
	// length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct convolves a and b in the time domain, returning a fresh slice of
// length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)

	return result, nil
}

// DirectTo convolves a and b into dst, which must have length
// len(a) + len(b) - 1. dst is overwritten.
func DirectTo(dst, a, b []float64) {
	clear(dst)

	// Scalar nested loops win for tiny kernels; the vectorized
	// scale-accumulate pays off once the kernel spans a few lanes.
	if len(b) < 4 {
		directScalar(dst, a, b)
		return
	}

	directVec(dst, a, b)
}

func directScalar(dst, a, b []float64) {
	for i, x := range a {
		for j, h := range b {
			dst[i+j] += x * h
		}
	}
}

func directVec(dst, a, b []float64) {
	m := len(b)
	scaled := make([]float64, m)

	for i, x := range a {
		vecmath.ScaleBlock(scaled, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], scaled)
	}
}

// DirectCircular convolves a and b circularly. The inputs must share one
// length N and the result has length N.
func DirectCircular(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	result := make([]float64, len(a))
	DirectCircularTo(result, a, b)

	return result, nil
}

// DirectCircularTo convolves a and b circularly into dst, overwriting it.
// The inner accumulation dst[(i+j) mod n] += a[i]*b[j] is split at the wrap
// point so no modulo runs per sample.
func DirectCircularTo(dst, a, b []float64) {
	n := len(a)

	clear(dst)

	for i, x := range a {
		for j := 0; j < n-i; j++ {
			dst[i+j] += x * b[j]
		}
		for j := n - i; j < n; j++ {
			dst[i+j-n] += x * b[j]
		}
	}
}

// Convolve convolves a and b, picking an algorithm by kernel length: direct
// up to 64 samples, FFT-based overlap-add beyond that.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Convolution commutes; treat the longer input as the signal.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= 64 {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode convolves a and b and trims the result to the given mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return cropToMode(full, len(a), len(b), mode), nil
}

// cropToMode slices the requested window out of a full-length result.
func cropToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		lo := min(lenA, lenB)
		hi := max(lenA, lenB)

		return full[lo-1 : hi]
	default:
		return full
	}
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
