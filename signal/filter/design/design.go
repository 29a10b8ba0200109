// Package design computes biquad cascade coefficients for classic filter
// families: single RBJ lowpass/highpass sections, Butterworth cascades with
// the exact -3 dB crossing at the cutoff, and Chebyshev Type I/II cascades.
//
// All functions validate their parameters and return an error instead of
// placeholder coefficients. The returned slices plug directly into
// biquad.NewChain or biquad.Sosfilt.
package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-signal/signal/filter/biquad"
)

// Errors returned for invalid design parameters.
var (
	ErrInvalidOrder      = errors.New("design: order must be positive")
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")
	ErrInvalidFrequency  = errors.New("design: cutoff must lie strictly between 0 and Nyquist")
	ErrInvalidQ          = errors.New("design: quality factor must be positive and finite")
	ErrInvalidRipple     = errors.New("design: ripple must be positive")
)

func validateCutoff(freq, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return ErrInvalidSampleRate
	}
	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) {
		return ErrInvalidFrequency
	}
	return nil
}

func validateQ(q float64) error {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return ErrInvalidQ
	}
	return nil
}

// Lowpass designs a single RBJ lowpass biquad at freq (Hz) with quality
// factor q. A lone section with q = 1/sqrt(2) is a second-order Butterworth.
func Lowpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	if err := validateCutoff(freq, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	if err := validateQ(q); err != nil {
		return biquad.Coefficients{}, err
	}
	return lowpassSection(freq, q, sampleRate), nil
}

// Highpass designs a single RBJ highpass biquad at freq (Hz) with quality
// factor q.
func Highpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	if err := validateCutoff(freq, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	if err := validateQ(q); err != nil {
		return biquad.Coefficients{}, err
	}
	return highpassSection(freq, q, sampleRate), nil
}

// lowpassSection evaluates the RBJ cookbook lowpass with pre-validated
// parameters.
func lowpassSection(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2

	return normalizeBiquad(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

// highpassSection evaluates the RBJ cookbook highpass with pre-validated
// parameters.
func highpassSection(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)

	return normalizeBiquad(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
