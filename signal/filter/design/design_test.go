package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

const defaultQ = 1 / math.Sqrt2

func TestLowpass_UnityAtDC(t *testing.T) {
	c, err := Lowpass(1000, defaultQ, 48000)
	if err != nil {
		t.Fatalf("Lowpass: %v", err)
	}

	got := cmplx.Abs(c.Response(0, 48000))
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("DC gain = %.15f, want 1", got)
	}
}

func TestLowpass_ZeroAtNyquist(t *testing.T) {
	c, err := Lowpass(1000, defaultQ, 48000)
	if err != nil {
		t.Fatalf("Lowpass: %v", err)
	}

	if got := c.MagnitudeSquared(24000, 48000); got > 1e-12 {
		t.Fatalf("|H|^2 at Nyquist = %g, want ~0", got)
	}
}

func TestHighpass_ZeroAtDC(t *testing.T) {
	c, err := Highpass(1000, defaultQ, 48000)
	if err != nil {
		t.Fatalf("Highpass: %v", err)
	}

	if got := c.MagnitudeSquared(0, 48000); got > 1e-12 {
		t.Fatalf("|H|^2 at DC = %g, want ~0", got)
	}
}

func TestHighpass_UnityAtNyquist(t *testing.T) {
	c, err := Highpass(1000, defaultQ, 48000)
	if err != nil {
		t.Fatalf("Highpass: %v", err)
	}

	got := cmplx.Abs(c.Response(24000, 48000))
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("Nyquist gain = %.15f, want 1", got)
	}
}

// The RBJ magnitude at the center frequency equals Q exactly, so a resonant
// section must peak by 20*log10(q) there.
func TestLowpass_ResonantGainAtCutoff(t *testing.T) {
	for _, q := range []float64{0.5, defaultQ, 1, 2, 4} {
		c, err := Lowpass(1000, q, 48000)
		if err != nil {
			t.Fatalf("Lowpass q=%g: %v", q, err)
		}

		want := 20 * math.Log10(q)
		if got := c.MagnitudeDB(1000, 48000); math.Abs(got-want) > 1e-9 {
			t.Errorf("q=%g: %.9f dB at cutoff, want %.9f dB", q, got, want)
		}
	}
}

func TestLowpass_MatchesButterworthOrder2(t *testing.T) {
	single, err := Lowpass(2000, defaultQ, 48000)
	if err != nil {
		t.Fatalf("Lowpass: %v", err)
	}

	cascade, err := ButterworthLP(2000, 2, 48000)
	if err != nil {
		t.Fatalf("ButterworthLP: %v", err)
	}

	if len(cascade) != 1 {
		t.Fatalf("got %d sections, want 1", len(cascade))
	}

	got := cascade[0]
	pairs := [][2]float64{
		{got.B0, single.B0}, {got.B1, single.B1}, {got.B2, single.B2},
		{got.A1, single.A1}, {got.A2, single.A2},
	}
	for i, p := range pairs {
		if math.Abs(p[0]-p[1]) > 1e-14 {
			t.Fatalf("coefficient %d mismatch: got %v, want %v", i, p[0], p[1])
		}
	}
}

func TestLowpassHighpass_Stable(t *testing.T) {
	for _, q := range []float64{0.1, defaultQ, 1, 10, 100} {
		for _, freq := range []float64{20, 1000, 20000} {
			lp, err := Lowpass(freq, q, 48000)
			if err != nil {
				t.Fatalf("Lowpass(%g, %g): %v", freq, q, err)
			}

			hp, err := Highpass(freq, q, 48000)
			if err != nil {
				t.Fatalf("Highpass(%g, %g): %v", freq, q, err)
			}

			if !lp.IsStable() || !hp.IsStable() {
				t.Errorf("freq=%g q=%g: unstable section", freq, q)
			}
		}
	}
}

func TestDesign_InvalidInputs(t *testing.T) {
	cases := []struct {
		name       string
		freq       float64
		q          float64
		sampleRate float64
		want       error
	}{
		{"zero freq", 0, defaultQ, 48000, ErrInvalidFrequency},
		{"freq at nyquist", 24000, defaultQ, 48000, ErrInvalidFrequency},
		{"nan freq", math.NaN(), defaultQ, 48000, ErrInvalidFrequency},
		{"zero q", 1000, 0, 48000, ErrInvalidQ},
		{"negative q", 1000, -1, 48000, ErrInvalidQ},
		{"nan q", 1000, math.NaN(), 48000, ErrInvalidQ},
		{"inf q", 1000, math.Inf(1), 48000, ErrInvalidQ},
		{"zero sample rate", 1000, defaultQ, 0, ErrInvalidSampleRate},
		{"inf sample rate", 1000, defaultQ, math.Inf(1), ErrInvalidSampleRate},
	}

	for _, tc := range cases {
		if _, err := Lowpass(tc.freq, tc.q, tc.sampleRate); !errors.Is(err, tc.want) {
			t.Errorf("Lowpass %s: got %v, want %v", tc.name, err, tc.want)
		}
		if _, err := Highpass(tc.freq, tc.q, tc.sampleRate); !errors.Is(err, tc.want) {
			t.Errorf("Highpass %s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNormalizeBiquad_DegenerateA0(t *testing.T) {
	zero := normalizeBiquad(1, 2, 1, 0, 0.5, 0.25)
	if zero.B0 != 0 || zero.B1 != 0 || zero.B2 != 0 || zero.A1 != 0 || zero.A2 != 0 {
		t.Fatalf("a0=0 should yield zero coefficients, got %+v", zero)
	}
}
