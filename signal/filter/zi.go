package filter

// LfilterZi returns the initial state for [LfilterIC] that makes the filter
// respond to a unit step as if it had been at its steady state forever.
// Scaling the result by the first input sample removes the startup
// transient for signals that begin near that level; [FiltFilt] relies on
// this to keep its forward and backward passes transient-free.
//
// The state is the fixed point of the Direct Form II Transposed update for
// constant input x = 1 and constant output y = K, where K is the DC gain
// sum(b)/sum(a). Walking the update equations from the first state entry
// downward yields each entry from the previous one, so no linear system
// has to be solved.
func LfilterZi(b, a []float64) ([]float64, error) {
	bn, an, err := normalizeTF(b, a)
	if err != nil {
		return nil, err
	}

	n := len(bn)
	zi := make([]float64, n-1)
	if n == 1 {
		return zi, nil
	}

	var sumB, sumA float64
	for i := range bn {
		sumB += bn[i]
		sumA += an[i]
	}
	if sumA == 0 {
		return nil, ErrNoSteadyState
	}
	gain := sumB / sumA

	zi[0] = gain - bn[0]
	for i := 0; i < n-2; i++ {
		zi[i+1] = zi[i] + an[i+1]*gain - bn[i+1]
	}

	return zi, nil
}
