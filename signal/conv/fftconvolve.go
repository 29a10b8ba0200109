package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFTConvolve performs one-shot linear convolution through a single FFT
// round trip: both inputs are zero-padded to a power of two covering the
// full result, multiplied bin-wise, and transformed back.
// The result holds len(a) + len(b) - 1 samples.
func FFTConvolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	size := nextPowerOf2(len(a) + len(b) - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to plan FFT: %w", err)
	}

	fa := make([]complex128, size)
	fb := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward transform failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward transform failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse transform failed: %w", err)
	}

	result := make([]float64, len(a)+len(b)-1)
	for i := range result {
		result[i] = real(fa[i])
	}

	return result, nil
}

// FFTConvolveMode trims the full FFT convolution down to the requested mode.
func FFTConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := FFTConvolve(a, b)
	if err != nil {
		return nil, err
	}

	return cropToMode(full, len(a), len(b), mode), nil
}
