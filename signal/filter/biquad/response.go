package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates the transfer function of one section at the given
// frequency and sample rate, returning the complex gain H(e^jw). Numerator
// and denominator are walked with Horner's rule in powers of z^-1.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))

	num := (complex(c.B2, 0)*z1+complex(c.B1, 0))*z1 + complex(c.B0, 0)
	den := (complex(c.A2, 0)*z1+complex(c.A1, 0))*z1 + 1

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 from the real and imaginary parts of
// numerator and denominator directly, with no complex arithmetic.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	sw, cw := math.Sincos(w)
	s2, c2 := math.Sincos(2 * w)

	nr := c.B0 + c.B1*cw + c.B2*c2
	ni := c.B1*sw + c.B2*s2
	dr := 1 + c.A1*cw + c.A2*c2
	di := c.A1*sw + c.A2*s2

	return (nr*nr + ni*ni) / (dr*dr + di*di)
}

// MagnitudeDB returns the section magnitude response in dB,
// 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response returns the cascade transfer function at the given frequency:
// the input gain times the product over all section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// ImpulseResponse returns the first n samples of h[n] for this section.
// The delay line is saved up front and restored afterwards, so probing a
// live filter leaves it untouched.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	s.Reset()

	out := make([]float64, n)
	x := 1.0
	for i := range out {
		out[i] = s.ProcessSample(x)
		x = 0
	}

	s.SetState(saved)

	return out
}

// ImpulseResponse returns the first n samples of the cascade impulse
// response, with every section's state saved and restored around the measurement.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	c.Reset()

	out := make([]float64, n)
	x := 1.0
	for i := range out {
		out[i] = c.ProcessSample(x)
		x = 0
	}

	c.SetState(saved)

	return out
}
