package filter

import "errors"

// Errors returned by filter operations.
var (
	ErrEmptyCoefficients = errors.New("filter: empty coefficient vector")
	ErrZeroDenominator   = errors.New("filter: leading denominator coefficient is zero")
	ErrBadStateLength    = errors.New("filter: initial state length mismatch")
	ErrNoSteadyState     = errors.New("filter: no steady state, denominator sums to zero")
	ErrInputTooShort     = errors.New("filter: input shorter than pad length")
)

// normalizeTF expands b and a to a common length and divides through by
// a[0], so the filter core can assume a[0] == 1.
func normalizeTF(b, a []float64) (bn, an []float64, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, ErrEmptyCoefficients
	}
	if a[0] == 0 {
		return nil, nil, ErrZeroDenominator
	}

	n := max(len(b), len(a))
	bn = make([]float64, n)
	an = make([]float64, n)

	inv := 1 / a[0]
	for i, v := range b {
		bn[i] = v * inv
	}
	for i, v := range a {
		an[i] = v * inv
	}

	return bn, an, nil
}

// lfilterCore runs the Direct Form II Transposed recurrence over x. b and a
// must be normalized to equal length n with a[0] == 1, and z must hold the
// n-1 state values; it is updated in place and holds the final conditions
// when the call returns.
func lfilterCore(b, a, x, z []float64) []float64 {
	y := make([]float64, len(x))
	n := len(b)

	if n == 1 {
		for i, v := range x {
			y[i] = b[0] * v
		}
		return y
	}

	for k, xk := range x {
		yk := b[0]*xk + z[0]
		for i := 0; i < n-2; i++ {
			z[i] = b[i+1]*xk + z[i+1] - a[i+1]*yk
		}
		z[n-2] = b[n-1]*xk - a[n-1]*yk
		y[k] = yk
	}

	return y
}

// Lfilter filters x with the transfer function described by numerator b and
// denominator a, starting from zero state. The output has the same length
// as x.
func Lfilter(b, a, x []float64) ([]float64, error) {
	bn, an, err := normalizeTF(b, a)
	if err != nil {
		return nil, err
	}

	z := make([]float64, len(bn)-1)
	return lfilterCore(bn, an, x, z), nil
}

// LfilterIC filters x like [Lfilter] but starts from the initial conditions
// zi and additionally returns the final conditions. zi must have
// max(len(b), len(a)) - 1 entries, matching [LfilterZi]; it is not modified.
func LfilterIC(b, a, x, zi []float64) (y, zf []float64, err error) {
	bn, an, err := normalizeTF(b, a)
	if err != nil {
		return nil, nil, err
	}

	if len(zi) != len(bn)-1 {
		return nil, nil, ErrBadStateLength
	}

	z := make([]float64, len(zi))
	copy(z, zi)

	return lfilterCore(bn, an, x, z), z, nil
}
