package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd convolves long signals against a fixed kernel with the
// overlap-add scheme: the input is cut into blocks, each block is convolved
// with the kernel in the frequency domain, and the overhanging tails of
// consecutive block results are summed into the output.
type OverlapAdd struct {
	kernelSpec []complex128

	kernelLen int
	blockSize int
	fftSize   int // covers blockSize + kernelLen - 1

	plan *algofft.Plan[complex128]

	scratch []complex128
}

// NewOverlapAdd builds a convolver for the given kernel. blockSize sets the
// input segmentation; zero picks one automatically from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, ErrInvalidBlockSize
	}

	kernelLen := len(kernel)

	if blockSize == 0 {
		blockSize = max(nextPowerOf2(kernelLen), 256)
	}

	// Linear convolution of one block needs blockSize + kernelLen - 1 bins.
	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to plan FFT: %w", err)
	}

	oa := &OverlapAdd{
		kernelSpec: make([]complex128, fftSize),
		kernelLen:  kernelLen,
		blockSize:  blockSize,
		fftSize:    fftSize,
		plan:       plan,
		scratch:    make([]complex128, fftSize),
	}

	for i, v := range kernel {
		oa.scratch[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelSpec, oa.scratch); err != nil {
		return nil, fmt.Errorf("conv: failed to transform kernel: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the transform size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process convolves input with the kernel, returning the full linear
// convolution of length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.ProcessTo(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessTo convolves input into output without allocating. output must
// have length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	want := len(input) + oa.kernelLen - 1
	if len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	clear(output)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))
		block := input[start:end]

		for i, v := range block {
			oa.scratch[i] = complex(v, 0)
		}
		clear(oa.scratch[len(block):])

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: forward transform failed: %w", err)
		}

		for i := range oa.scratch {
			oa.scratch[i] *= oa.kernelSpec[i]
		}

		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: inverse transform failed: %w", err)
		}

		// A block of L samples lands L + kernelLen - 1 output samples at
		// start; the tail overlaps the next block's head.
		n := min(len(block)+oa.kernelLen-1, len(output)-start)
		for i := 0; i < n; i++ {
			output[start+i] += real(oa.scratch[i])
		}
	}

	return nil
}

// Reset clears internal state. Overlap-add keeps no history between calls,
// so this only exists to satisfy callers that reset processors uniformly.
func (oa *OverlapAdd) Reset() {}

// OverlapAddConvolve runs a one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}

	return oa.Process(signal)
}

// OverlapAddConvolveTo runs a one-shot overlap-add convolution into a
// caller-provided buffer.
func OverlapAddConvolveTo(output, signal, kernel []float64) error {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return err
	}

	return oa.ProcessTo(output, signal)
}
