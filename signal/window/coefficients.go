package window

// Cosine-sum windows are evaluated as sum over k of c[k]*cos(2*pi*k*x) with
// x in [0, 1]. Relative to the textbook a_k terms in cos(pi*k*(2x-1)) form,
// odd-indexed coefficients carry a flipped sign.
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}

	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	nuttallCoeffs        = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}

	flatTopCoeffs = []float64{
		0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368,
	}
)

// generalHammingCoeffs returns the two-term cosine coefficients for the
// general Hamming family: alpha - (1-alpha)*cos(2*pi*n/(N-1)).
func generalHammingCoeffs(alpha float64) []float64 {
	return []float64{alpha, alpha - 1}
}
