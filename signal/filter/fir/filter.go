// Package fir implements streaming finite-impulse-response filtering in
// direct form, holding past samples in a ring buffer.
package fir

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrNoTaps reports an attempt to build a filter without coefficients.
var ErrNoTaps = errors.New("fir: no taps")

// Filter convolves an input stream with a fixed tap vector. Past samples
// live in a ring buffer, so per-sample cost is one store plus one pass over
// the taps.
type Filter struct {
	taps []float64
	ring []float64
	head int
}

// New builds a filter from the given tap weights, copying them. The filter
// order is len(taps)-1.
func New(taps []float64) (*Filter, error) {
	if len(taps) == 0 {
		return nil, ErrNoTaps
	}

	return &Filter{
		taps: append([]float64(nil), taps...),
		ring: make([]float64, len(taps)),
	}, nil
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// The ring walk is split at the wrap point, which keeps the inner loops
// branch-free.
func (f *Filter) ProcessSample(x float64) float64 {
	f.ring[f.head] = x

	var y float64

	k := 0
	for p := f.head; p >= 0; p-- {
		y += f.taps[k] * f.ring[p]
		k++
	}

	for p := len(f.ring) - 1; k < len(f.taps); p-- {
		y += f.taps[k] * f.ring[p]
		k++
	}

	f.head++
	if f.head == len(f.ring) {
		f.head = 0
	}

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst without touching src. The slices must
// have equal length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset zeroes the sample history.
func (f *Filter) Reset() {
	clear(f.ring)
	f.head = 0
}

// Order reports the filter order, len(taps)-1.
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Taps returns a copy of the tap weights.
func (f *Filter) Taps() []float64 {
	return append([]float64(nil), f.taps...)
}

// Response evaluates the frequency response H(e^{jw}) at freqHz for the
// given sample rate, treating the taps as a polynomial in z^-1 evaluated by
// Horner's rule.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z := cmplx.Exp(complex(0, -w))

	var h complex128
	for k := len(f.taps) - 1; k >= 0; k-- {
		h = h*z + complex(f.taps[k], 0)
	}

	return h
}

// MagnitudeDB reports the magnitude response in decibels at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
