package special

import "math"

// expOverflow is the largest argument for which math.Exp still returns a
// finite value. Beyond it exp(ax), and therefore I0(ax), overflows float64.
const expOverflow = 7.09782712893383973096e+02

// Chebyshev coefficients for exp(-x) I0(x) over [0, 8], evaluated at
// t = x/2 - 2. Taken from the Cephes Mathematical Library (i0.c) by
// Stephen L. Moshier; reproduced verbatim so results stay bit-compatible
// with the reference implementations derived from the same tables.
var i0SmallCoeffs = []float64{
	-4.41534164647933937950e-18,
	3.33079451882223809783e-17,
	-2.43127984654795469359e-16,
	1.71539128555513303061e-15,
	-1.16853328779934516808e-14,
	7.67618549860493561688e-14,
	-4.85644678311192946090e-13,
	2.95505266312963983461e-12,
	-1.72682629144155570723e-11,
	9.67580903537323691224e-11,
	-5.18979560163526290666e-10,
	2.65982372468238665035e-09,
	-1.30002500998624804212e-08,
	6.04699502254191894932e-08,
	-2.67079385394061173391e-07,
	1.11738753912010371815e-06,
	-4.41673835845875056359e-06,
	1.64484480707288970893e-05,
	-5.75419501008210370398e-05,
	1.88502885095841655729e-04,
	-5.76375574538582365885e-04,
	1.63947561694133579842e-03,
	-4.32430999505057594430e-03,
	1.05464603945949983183e-02,
	-2.37374148058994688156e-02,
	4.93052842396707084878e-02,
	-9.49010970480476444210e-02,
	1.71620901522208775349e-01,
	-3.04682672343198398683e-01,
	6.76795274409476084995e-01,
}

// Chebyshev coefficients for exp(-x) sqrt(x) I0(x) over [8, inf), evaluated
// at t = 32/x - 2. Same provenance as i0SmallCoeffs.
var i0LargeCoeffs = []float64{
	-7.23318048787475395456e-18,
	-4.83050448594418207126e-18,
	4.46562142029675999901e-17,
	3.46122286769746109310e-17,
	-2.82762398051658348494e-16,
	-3.42548561967721913462e-16,
	1.77256013305652638360e-15,
	3.81168066935262242075e-15,
	-9.55484669882830764870e-15,
	-4.15056934728722208663e-14,
	1.54008621752140982691e-14,
	3.85277838274214270114e-13,
	7.18012445138366623367e-13,
	-1.79417853150680611778e-12,
	-1.32158118404477131188e-11,
	-3.14991652796324136454e-11,
	1.18891471078464383424e-11,
	4.94060238822496958910e-10,
	3.39623202570838634515e-09,
	2.26666899049817806459e-08,
	2.04891858946906374183e-07,
	2.89137052083475648297e-06,
	6.88975834691682398426e-05,
	3.36911647825569408990e-03,
	8.04490411014108831608e-01,
}

// I0 returns the modified Bessel function of the first kind, order zero,
// of x.
//
// The evaluation splits the domain at |x| = 8: below it a 30-term Chebyshev
// series in x/2-2 is scaled by exp(|x|), above it a 25-term series in 32/x-2
// is scaled by exp(|x|)/sqrt(|x|). Relative error stays below about 1e-15 on
// either interval.
//
// I0 is even, so I0(x) == I0(-x) bit for bit. I0(0) == 1 is the global
// minimum. Once |x| is large enough that exp(|x|) exceeds the float64 range
// the function returns +Inf without calling exp. NaN propagates to NaN.
func I0(x float64) float64 {
	ax := math.Abs(x)

	// Written as ax > bound so a NaN argument falls through to the series
	// evaluation and comes back out as NaN.
	if ax > expOverflow {
		return math.Inf(1)
	}

	if ax <= 8 {
		return math.Exp(ax) * chebEval(ax/2-2, i0SmallCoeffs)
	}

	return math.Exp(ax) * chebEval(32/ax-2, i0LargeCoeffs) / math.Sqrt(ax)
}

// I0e returns the exponentially scaled modified Bessel function of the first
// kind, order zero: exp(-|x|) I0(x).
//
// The scaled form stays finite for every finite argument, which makes it the
// right building block when ratios or products of Bessel terms would
// otherwise overflow. Like I0 it is even, and I0e(0) == 1.
func I0e(x float64) float64 {
	ax := math.Abs(x)

	if ax <= 8 {
		return chebEval(ax/2-2, i0SmallCoeffs)
	}

	return chebEval(32/ax-2, i0LargeCoeffs) / math.Sqrt(ax)
}
