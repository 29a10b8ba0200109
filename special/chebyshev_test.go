package special

import (
	"math"
	"testing"
)

func TestChebEval_SingleCoefficient(t *testing.T) {
	// A one-term series is c0*T0/2 regardless of the argument.
	for _, x := range []float64{-2, -0.5, 0, 1.3, 2} {
		if got := chebEval(x, []float64{3}); got != 1.5 {
			t.Fatalf("chebEval(%v, {3}) = %v, want 1.5", x, got)
		}
	}
}

func TestChebEval_LowOrderIdentities(t *testing.T) {
	// With the Cephes convention the two-term series {a, b} is
	// a*T1(x/2) + b/2 and the three-term series {a, b, c} adds a*T2(x/2).
	const a, b, c = 1.25, -0.75, 2.5

	for _, x := range []float64{-2, -1, -0.3, 0, 0.7, 1.5, 2} {
		want2 := a*(x/2) + b/2
		if got := chebEval(x, []float64{a, b}); math.Abs(got-want2) > 1e-15 {
			t.Fatalf("chebEval(%v, 2 terms) = %v, want %v", x, got, want2)
		}

		y := x / 2

		want3 := a*(2*y*y-1) + b*y + c/2
		if got := chebEval(x, []float64{a, b, c}); math.Abs(got-want3) > 1e-14 {
			t.Fatalf("chebEval(%v, 3 terms) = %v, want %v", x, got, want3)
		}
	}
}

func TestChebEval_TableEndpoints(t *testing.T) {
	// The small table evaluated at the lower interval edge must reproduce
	// exp(0)*I0(0) = 1: the two regimes are only consistent if the shared
	// evaluator treats the tables the way they were fitted.
	if got := chebEval(-2, i0SmallCoeffs); math.Abs(got-1) > 5e-15 {
		t.Fatalf("chebEval(-2, small table) = %v, want 1", got)
	}

	// At the split both tables must describe the same function value.
	small := math.Exp(8) * chebEval(2, i0SmallCoeffs)

	large := math.Exp(8) * chebEval(2, i0LargeCoeffs) / math.Sqrt(8)
	if rel := math.Abs(small-large) / small; rel > 1e-13 {
		t.Fatalf("table mismatch at split: small=%v large=%v rel=%g", small, large, rel)
	}
}
