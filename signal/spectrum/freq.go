package spectrum

import "fmt"

// FFTFreq returns the sample frequencies for a length-n FFT with sample
// spacing d (in seconds), ordered the way FFT bins are: non-negative
// frequencies first, then the negative half. The Nyquist bin of an
// even-length transform lands in the negative half.
func FFTFreq(n int, d float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: fft length must be positive, got %d", n)
	}
	if d <= 0 {
		return nil, fmt.Errorf("spectrum: sample spacing must be positive, got %g", d)
	}

	out := make([]float64, n)
	scale := 1 / (d * float64(n))

	// Non-negative bins 0..(n-1)/2, then negative bins counting up to -1.
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * scale
	}

	neg := -(n / 2)
	for i := half + 1; i < n; i++ {
		out[i] = float64(neg) * scale
		neg++
	}

	return out, nil
}

// RFFTFreq returns the sample frequencies for the non-redundant half of a
// length-n real FFT: n/2+1 values from DC up to and including Nyquist.
// These match the bins returned by [Magnitude] and [Power] when n is the
// padded frame length, NextFFTSize(len(frame)).
func RFFTFreq(n int, d float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: fft length must be positive, got %d", n)
	}
	if d <= 0 {
		return nil, fmt.Errorf("spectrum: sample spacing must be positive, got %g", d)
	}

	out := make([]float64, n/2+1)
	scale := 1 / (d * float64(n))
	for i := range out {
		out[i] = float64(i) * scale
	}

	return out, nil
}
