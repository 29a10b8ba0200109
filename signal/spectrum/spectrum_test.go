package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-signal/internal/testutil"
)

func TestMagnitudeSinePeak(t *testing.T) {
	const (
		n   = 256
		bin = 8
	)
	frame := testutil.DeterministicSine(bin, n, 1.0, n)

	mag, err := Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}

	if len(mag) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(mag))
	}

	// A full-scale sine landing exactly on a bin concentrates all energy
	// there with |X[k]| = N/2.
	if math.Abs(mag[bin]-n/2) > 1e-9 {
		t.Errorf("peak bin %d: got %v, want %v", bin, mag[bin], float64(n/2))
	}

	for i, m := range mag {
		if i == bin {
			continue
		}
		if m > 1e-8 {
			t.Errorf("bin %d should carry no energy, got %v", i, m)
		}
	}
}

func TestMagnitudeDCFrame(t *testing.T) {
	frame := testutil.DC(1.0, 64)

	mag, err := Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}

	if math.Abs(mag[0]-64) > 1e-9 {
		t.Errorf("DC bin: got %v, want 64", mag[0])
	}
	for i := 1; i < len(mag); i++ {
		if mag[i] > 1e-9 {
			t.Errorf("bin %d should be empty for DC input, got %v", i, mag[i])
		}
	}
}

func TestPowerMatchesMagnitudeSquared(t *testing.T) {
	frame := testutil.DeterministicNoise(42, 1.0, 128)

	mag, err := Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}
	pow, err := Power(frame)
	if err != nil {
		t.Fatalf("Power failed: %v", err)
	}

	if len(pow) != len(mag) {
		t.Fatalf("bin count mismatch: %d vs %d", len(pow), len(mag))
	}
	for i := range mag {
		if math.Abs(pow[i]-mag[i]*mag[i]) > 1e-6 {
			t.Errorf("bin %d: power %v != magnitude^2 %v", i, pow[i], mag[i]*mag[i])
		}
	}
}

func TestMagnitudePadsToPowerOfTwo(t *testing.T) {
	frame := testutil.DeterministicNoise(7, 1.0, 100)

	mag, err := Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}

	want := NextFFTSize(100)/2 + 1
	if len(mag) != want {
		t.Errorf("expected %d bins for a padded frame, got %d", want, len(mag))
	}
}

func TestEmptyFrameErrors(t *testing.T) {
	if _, err := Magnitude(nil); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("Magnitude(nil): expected ErrEmptyFrame, got %v", err)
	}
	if _, err := Power([]float64{}); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("Power(empty): expected ErrEmptyFrame, got %v", err)
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0, 1}
	im := []float64{4, 2, 0}

	mag := make([]float64, 3)
	if err := MagnitudeFromParts(mag, re, im); err != nil {
		t.Fatalf("MagnitudeFromParts failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, 2, 1}, 1e-12)

	pow := make([]float64, 3)
	if err := PowerFromParts(pow, re, im); err != nil {
		t.Fatalf("PowerFromParts failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 4, 1}, 1e-12)
}

func TestFromPartsLengthMismatch(t *testing.T) {
	dst := make([]float64, 2)

	if err := MagnitudeFromParts(dst, []float64{1, 2, 3}, []float64{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch for short dst, got %v", err)
	}
	if err := PowerFromParts(make([]float64, 3), []float64{1, 2, 3}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch for short im, got %v", err)
	}
}

func TestBinsAdapters(t *testing.T) {
	bins := SliceBins{complex(3, 4), complex(0, 2), complex(-1, 0)}

	mag := MagnitudeBins(bins)
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, 2, 1}, 1e-12)

	pow := PowerBins(bins)
	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 4, 1}, 1e-12)

	if got := MagnitudeBins(nil); got != nil {
		t.Errorf("MagnitudeBins(nil) should return nil, got %v", got)
	}
	if got := PowerBins(nil); got != nil {
		t.Errorf("PowerBins(nil) should return nil, got %v", got)
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{complex(1, 0), complex(0, 1), complex(-1, 0)}

	got := Phase(in)
	want := []float64{0, math.Pi / 2, math.Pi}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	gotBins := PhaseBins(SliceBins(in))
	testutil.RequireSliceNearlyEqual(t, gotBins, want, 1e-12)

	if got := PhaseBins(nil); got != nil {
		t.Errorf("PhaseBins(nil) should return nil, got %v", got)
	}
}

func TestUnwrapPhase(t *testing.T) {
	const step = -0.8

	// A steadily decreasing phase ramp, wrapped into (-pi, pi].
	truth := make([]float64, 40)
	wrapped := make([]float64, 40)
	for i := range truth {
		truth[i] = step * float64(i)
		wrapped[i] = math.Mod(truth[i], 2*math.Pi)
		if wrapped[i] <= -math.Pi {
			wrapped[i] += 2 * math.Pi
		} else if wrapped[i] > math.Pi {
			wrapped[i] -= 2 * math.Pi
		}
	}

	got := UnwrapPhase(wrapped)
	testutil.RequireSliceNearlyEqual(t, got, truth, 1e-9)

	if got := UnwrapPhase(nil); len(got) != 0 {
		t.Errorf("UnwrapPhase(nil) should be empty, got %v", got)
	}
}

func TestUnwrapPhaseDoesNotModifyInput(t *testing.T) {
	in := []float64{0, 3, -3, 3}
	orig := append([]float64(nil), in...)

	UnwrapPhase(in)

	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input modified at %d: %v != %v", i, in[i], orig[i])
		}
	}
}

func TestNextFFTSize(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{100, 128},
		{256, 256},
		{257, 512},
	}
	for _, tc := range cases {
		if got := NextFFTSize(tc.n); got != tc.want {
			t.Errorf("NextFFTSize(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
