package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponse_Passthrough(t *testing.T) {
	c := passthrough()
	for _, freq := range []float64{0, 100, 1000, 10000, 24000} {
		h := c.Response(freq, 48000)
		if !almostEqual(cmplx.Abs(h), 1, 1e-12) {
			t.Errorf("f=%v: |H| = %v, want 1", freq, cmplx.Abs(h))
		}
		if db := c.MagnitudeDB(freq, 48000); !almostEqual(db, 0, 1e-10) {
			t.Errorf("f=%v: got %v dB, want 0", freq, db)
		}
	}
}

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	for _, freq := range []float64{0, 50, 440, 1000, 5000, 12000, 20000} {
		h := c.Response(freq, 48000)

		want := real(h)*real(h) + imag(h)*imag(h)
		got := c.MagnitudeSquared(freq, 48000)
		if !almostEqual(got, want, 1e-12) {
			t.Errorf("f=%v: closed form %.15f, |H|^2 %.15f", freq, got, want)
		}
	}
}

func TestMagnitudeSquared_TwoTapAverage(t *testing.T) {
	c := simpleLowpass()

	// Unity at DC, null at Nyquist.
	if got := c.MagnitudeSquared(0, 48000); !almostEqual(got, 1, 1e-12) {
		t.Errorf("DC: got %v, want 1", got)
	}
	if got := c.MagnitudeSquared(24000, 48000); !almostEqual(got, 0, 1e-12) {
		t.Errorf("Nyquist: got %v, want 0", got)
	}
}

func TestPhase_PureDelay(t *testing.T) {
	// H(z) = z^-1 has phase -w.
	c := Coefficients{B1: 1}

	got := c.Phase(6000, 48000)
	want := -math.Pi / 4
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("phase: got %v, want %v", got, want)
	}
}

func TestSection_ImpulseResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	// Warm the state, then check ImpulseResponse leaves it alone.
	s.ProcessSample(1)
	s.ProcessSample(-0.5)
	before := s.State()

	ir := s.ImpulseResponse(6)
	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("h[%d]: got %.15f, want %.15f", i, ir[i], want[i])
		}
	}

	if s.State() != before {
		t.Errorf("state disturbed: before=%v, after=%v", before, s.State())
	}

	if got := s.ImpulseResponse(0); got != nil {
		t.Errorf("ImpulseResponse(0) should be nil, got %v", got)
	}
}

func TestChain_ImpulseResponse(t *testing.T) {
	// Two cascaded two-tap averagers convolve to [0.25, 0.5, 0.25].
	chain := NewChain([]Coefficients{simpleLowpass(), simpleLowpass()})

	ir := chain.ImpulseResponse(5)
	want := []float64{0.25, 0.5, 0.25, 0, 0}
	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("h[%d]: got %.15f, want %.15f", i, ir[i], want[i])
		}
	}
}

func TestChain_Response_ProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)

	for _, freq := range []float64{100, 1000, 8000} {
		want := coeffs[0].Response(freq, 48000) * coeffs[1].Response(freq, 48000)

		got := chain.Response(freq, 48000)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: got %v, want %v", freq, got, want)
		}
	}
}

func TestChain_MagnitudeDB_IncludesGain(t *testing.T) {
	// Two unity-DC sections with gain 2 sit at +6.02 dB at DC.
	chain := NewChain([]Coefficients{simpleLowpass(), simpleLowpass()}, WithGain(2))

	got := chain.MagnitudeDB(0, 48000)
	want := 20 * math.Log10(2)
	if !almostEqual(got, want, 1e-10) {
		t.Errorf("DC: got %v dB, want %v dB", got, want)
	}
}
