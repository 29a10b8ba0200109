package special

// chebEval evaluates a Chebyshev series at x using the Clenshaw recurrence.
//
// With coeffs = {c[0], ..., c[n-1]} ordered from the highest-degree term
// down, the result is sum of c[i]*T(n-1-i, x/2) where the T0 coefficient
// enters with weight 1/2. This is the convention of the tables published in
// the Cephes library: the argument must already be mapped onto [-2, 2], the
// fit interval of the series. coeffs must not be empty.
func chebEval(x float64, coeffs []float64) float64 {
	b0 := coeffs[0]

	var b1, b2 float64

	for _, c := range coeffs[1:] {
		b2 = b1
		b1 = b0
		b0 = x*b1 - b2 + c
	}

	return 0.5 * (b0 - b2)
}
