package biquad

import (
	"github.com/cwbudde/algo-signal/signal/core"
)

// Coefficients is the transfer function of one second-order stage, normalized
// so that a0 equals 1 (a0 itself is not stored).
//
// Processing uses the Direct Form II Transposed recurrence:
//
//	y  = B0*x + z1
//	z1 = B1*x - A1*y + z2
//	z2 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is one biquad stage: a coefficient set plus the two delay
// registers of the Direct Form II Transposed structure.
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a zero-state Section with the given coefficients.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.z1
	s.z1 = s.B1*x - s.A1*y + s.z2
	s.z2 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place without allocating.
//
// Samples are consumed in pairs so the two recurrence updates can overlap.
// After each block the delay registers are flushed, keeping feedback out of
// the denormal range during long stretches of silence.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	z1, z2 := s.z1, s.z2

	n := len(buf)

	m := n &^ 1
	for i := 0; i < m; i += 2 {
		xa := buf[i]
		ya := b0*xa + z1
		t1 := b1*xa - a1*ya + z2
		t2 := b2*xa - a2*ya

		xb := buf[i+1]
		yb := b0*xb + t1
		z1 = b1*xb - a1*yb + t2
		z2 = b2*xb - a2*yb

		buf[i] = ya
		buf[i+1] = yb
	}

	if m < n {
		x := buf[m]
		y := b0*x + z1
		z1 = b1*x - a1*y + z2
		z2 = b2*x - a2*y
		buf[m] = y
	}

	s.z1 = core.FlushDenormals(z1)
	s.z2 = core.FlushDenormals(z2)
}

// ProcessBlockTo filters src into dst without allocating or touching src.
// The slices must have equal length.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	dst = dst[:len(src)]
	for i, x := range src {
		y := s.B0*x + s.z1
		s.z1 = s.B1*x - s.A1*y + s.z2
		s.z2 = s.B2*x - s.A2*y
		dst[i] = y
	}

	s.z1 = core.FlushDenormals(s.z1)
	s.z2 = core.FlushDenormals(s.z2)
}

// Reset zeroes the delay registers.
func (s *Section) Reset() {
	s.z1 = 0
	s.z2 = 0
}

// SetCoefficients replaces the coefficients while keeping the delay
// registers, so a running filter can retune without an output discontinuity.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// State returns the current delay registers [z1, z2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.z1, s.z2}
}

// SetState restores delay registers captured by State.
func (s *Section) SetState(state [2]float64) {
	s.z1 = state[0]
	s.z2 = state[1]
}
