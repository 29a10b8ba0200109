package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-signal/internal/testutil"
)

func TestFFTFreqEven(t *testing.T) {
	got, err := FFTFreq(8, 1)
	if err != nil {
		t.Fatalf("FFTFreq failed: %v", err)
	}

	want := []float64{0, 0.125, 0.25, 0.375, -0.5, -0.375, -0.25, -0.125}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestFFTFreqOdd(t *testing.T) {
	got, err := FFTFreq(5, 1)
	if err != nil {
		t.Fatalf("FFTFreq failed: %v", err)
	}

	want := []float64{0, 0.2, 0.4, -0.4, -0.2}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestFFTFreqSpacing(t *testing.T) {
	// d = 1/fs, so bin k sits at k*fs/n.
	got, err := FFTFreq(4, 1.0/48000)
	if err != nil {
		t.Fatalf("FFTFreq failed: %v", err)
	}

	want := []float64{0, 12000, -24000, -12000}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-6)
}

func TestRFFTFreq(t *testing.T) {
	got, err := RFFTFreq(8, 0.125)
	if err != nil {
		t.Fatalf("RFFTFreq failed: %v", err)
	}

	want := []float64{0, 1, 2, 3, 4}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestRFFTFreqOdd(t *testing.T) {
	got, err := RFFTFreq(9, 1)
	if err != nil {
		t.Fatalf("RFFTFreq failed: %v", err)
	}

	want := []float64{0, 1.0 / 9, 2.0 / 9, 3.0 / 9, 4.0 / 9}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestRFFTFreqMatchesSpectrumBins(t *testing.T) {
	frame := testutil.DeterministicNoise(3, 1.0, 200)

	mag, err := Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}

	freqs, err := RFFTFreq(NextFFTSize(len(frame)), 1.0/48000)
	if err != nil {
		t.Fatalf("RFFTFreq failed: %v", err)
	}

	if len(freqs) != len(mag) {
		t.Errorf("frequency axis length %d does not match bin count %d", len(freqs), len(mag))
	}
	if freqs[len(freqs)-1] != 24000 {
		t.Errorf("last bin should sit at Nyquist 24000, got %v", freqs[len(freqs)-1])
	}
}

func TestFreqValidation(t *testing.T) {
	if _, err := FFTFreq(0, 1); err == nil {
		t.Error("FFTFreq(0, 1) should fail")
	}
	if _, err := FFTFreq(8, 0); err == nil {
		t.Error("FFTFreq(8, 0) should fail")
	}
	if _, err := FFTFreq(8, -1); err == nil {
		t.Error("FFTFreq(8, -1) should fail")
	}
	if _, err := RFFTFreq(-4, 1); err == nil {
		t.Error("RFFTFreq(-4, 1) should fail")
	}
	if _, err := RFFTFreq(8, 0); err == nil {
		t.Error("RFFTFreq(8, 0) should fail")
	}
}
