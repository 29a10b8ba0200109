// Package spectrum computes magnitude and power spectra of real frames
// and provides adapters for working with complex FFT bins directly.
package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum functions.
var (
	ErrEmptyFrame     = errors.New("spectrum: empty frame")
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
)

// partsPool recycles the real/imaginary unpacking buffers so repeated
// spectrum calls allocate only their output slices.
var partsPool = sync.Pool{
	New: func() any { return new([]float64) },
}

// borrowParts hands out two n-length views into one pooled backing slice.
// The slot must go back through releaseParts when the views are done.
func borrowParts(n int) (re, im []float64, slot *[]float64) {
	slot = partsPool.Get().(*[]float64)

	backing := *slot
	if cap(backing) < 2*n {
		backing = make([]float64, 2*n)
	}
	backing = backing[:2*n]
	*slot = backing

	return backing[:n], backing[n:], slot
}

func releaseParts(slot *[]float64) {
	partsPool.Put(slot)
}

// unpackApply splits in into pooled real/imaginary parts and runs a
// vectorized two-part kernel over them.
func unpackApply(in []complex128, kernel func(dst, re, im []float64)) []float64 {
	out := make([]float64, len(in))

	re, im, slot := borrowParts(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	kernel(out, re, im)
	releaseParts(slot)

	return out
}

// NextFFTSize returns the FFT length used for a frame of length n: the next
// power of two at or above n.
func NextFFTSize(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// halfSpectrum transforms a real frame and returns the non-redundant bins
// k = 0..N/2 for N = NextFFTSize(len(frame)).
func halfSpectrum(frame []float64) ([]complex128, error) {
	if len(frame) == 0 {
		return nil, ErrEmptyFrame
	}

	fftSize := NextFFTSize(len(frame))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to plan FFT: %w", err)
	}

	buf := make([]complex128, fftSize)
	for i, v := range frame {
		buf[i] = complex(v, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("spectrum: forward transform failed: %w", err)
	}

	return buf[:fftSize/2+1], nil
}

// Magnitude returns |X[k]| of a real time-domain frame for the bins
// k = 0..N/2, where N is the frame length rounded up to the next power of
// two (the frame is zero-padded to N). Use RFFTFreq(NextFFTSize(len(frame)),
// d) for the matching bin frequencies.
func Magnitude(frame []float64) ([]float64, error) {
	bins, err := halfSpectrum(frame)
	if err != nil {
		return nil, err
	}

	return unpackApply(bins, vecmath.Magnitude), nil
}

// Power returns |X[k]|^2 of a real time-domain frame for the bins
// k = 0..N/2, with the same padding convention as Magnitude.
func Power(frame []float64) ([]float64, error) {
	bins, err := halfSpectrum(frame)
	if err != nil {
		return nil, err
	}

	return unpackApply(bins, vecmath.Power), nil
}

// MagnitudeFromParts writes sqrt(re[k]^2 + im[k]^2) into dst. All three
// slices must share one length.
func MagnitudeFromParts(dst, re, im []float64) error {
	if len(dst) != len(re) || len(re) != len(im) {
		return ErrLengthMismatch
	}

	vecmath.Magnitude(dst, re, im)
	return nil
}

// PowerFromParts writes re[k]^2 + im[k]^2 into dst. All three slices must
// share one length.
func PowerFromParts(dst, re, im []float64) error {
	if len(dst) != len(re) || len(re) != len(im) {
		return ErrLengthMismatch
	}

	vecmath.Power(dst, re, im)
	return nil
}

// ComplexBins is a read-only view over complex spectrum bins, decoupling
// this package from how an FFT backend stores its output.
type ComplexBins interface {
	Len() int
	At(i int) complex128
}

// SliceBins wraps a []complex128 in the [ComplexBins] interface.
type SliceBins []complex128

// Len counts the bins.
func (b SliceBins) Len() int { return len(b) }

// At returns bin i.
func (b SliceBins) At(i int) complex128 { return b[i] }

// MagnitudeBins computes |X[k]| over any [ComplexBins] source.
func MagnitudeBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}

	vals := make([]float64, in.Len())
	for i := range vals {
		vals[i] = cmplx.Abs(in.At(i))
	}

	return vals
}

// PowerBins computes |X[k]|^2 over any [ComplexBins] source.
func PowerBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}

	vals := make([]float64, in.Len())
	for i := range vals {
		c := in.At(i)
		vals[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	return vals
}
