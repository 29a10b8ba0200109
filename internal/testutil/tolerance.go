package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNearlyEqual fails t when got and want differ by more than eps in
// absolute terms. A NaN want demands a NaN got.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			t.Fatalf("got %v, want NaN", got)
		}

		return
	}

	if d := math.Abs(got - want); d > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, d, eps)
	}
}

// RequireSliceNearlyEqual fails t when the slices differ in length or any
// element pair differs by more than eps in absolute terms.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range want {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t on the first NaN or Inf element.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff reports the largest absolute elementwise difference between a
// and b, which must have equal length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	var worst float64
	for i := range a {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}

	return worst, nil
}
