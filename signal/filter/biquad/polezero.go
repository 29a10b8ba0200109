package biquad

import "math"

// PoleZeroPair describes one section in the z plane. First-order sections
// report the unused second pole and zero as 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the roots of the section denominator z^2 + A1*z + A2.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of the section numerator B0*z^2 + B1*z + B2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns the poles and zeros of one section together.
func (c *Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{Poles: c.Poles(), Zeros: c.Zeros()}
}

// IsStable reports whether both poles lie strictly inside the unit circle,
// using the stability triangle for the monic quadratic z^2 + A1*z + A2:
// |A2| < 1 and |A1| < 1 + A2. No roots are computed.
func (c *Coefficients) IsStable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// PoleZeroPairs maps each coefficient set to its pole/zero pair.
func PoleZeroPairs(coeffs []Coefficients) []PoleZeroPair {
	out := make([]PoleZeroPair, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].PoleZeroPair()
	}

	return out
}

// PoleZeroPairs maps each chain section to its pole/zero pair.
func (c *Chain) PoleZeroPairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].PoleZeroPair()
	}

	return out
}

// quadraticRoots solves a*x^2 + b*x + c = 0. A negative discriminant yields
// a conjugate pair; a degenerate leading coefficient drops the order.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)
		return [2]complex128{complex(re, im), complex(re, -im)}
	}

	r := math.Sqrt(disc)

	return [2]complex128{
		complex((-b+r)/(2*a), 0),
		complex((-b-r)/(2*a), 0),
	}
}
