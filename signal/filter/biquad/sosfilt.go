package biquad

import "errors"

// ErrNoSections reports a cascade filter call without any sections.
var ErrNoSections = errors.New("biquad: no sections")

// Sosfilt filters x through a cascade of second-order sections and returns
// the output. Each call starts from zero state; x is left untouched.
func Sosfilt(sections []Coefficients, x []float64) ([]float64, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	out := make([]float64, len(x))
	NewChain(sections).ProcessBlockTo(out, x)

	return out, nil
}
