package spectrum

import (
	"math"
	"math/cmplx"
)

// Phase returns the phase angle of each bin in radians, in (-pi, pi].
func Phase(in []complex128) []float64 {
	angles := make([]float64, len(in))
	for i, c := range in {
		angles[i] = cmplx.Phase(c)
	}
	return angles
}

// PhaseBins computes the phase angle of each bin over any [ComplexBins]
// source.
func PhaseBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}

	angles := make([]float64, in.Len())
	for i := range angles {
		angles[i] = cmplx.Phase(in.At(i))
	}
	return angles
}

// UnwrapPhase removes 2*pi discontinuities from a wrapped phase sequence so
// the result is continuous. The input is not modified.
func UnwrapPhase(phase []float64) []float64 {
	unwrapped := make([]float64, len(phase))
	if len(phase) == 0 {
		return unwrapped
	}

	unwrapped[0] = phase[0]
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		diff := phase[i] - phase[i-1]
		if diff > math.Pi {
			offset -= 2 * math.Pi
		} else if diff < -math.Pi {
			offset += 2 * math.Pi
		}
		unwrapped[i] = phase[i] + offset
	}

	return unwrapped
}
