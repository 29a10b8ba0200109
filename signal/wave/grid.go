package wave

import (
	"fmt"
	"math"
)

// Linspace returns n evenly spaced values from start to stop, both included.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace needs at least 2 points: %d", n)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("linspace bounds must be finite: %f, %f", start, stop)
	}

	out := make([]float64, n)
	span := stop - start
	den := float64(n - 1)

	for i := range out {
		out[i] = start + span*float64(i)/den
	}
	out[n-1] = stop

	return out, nil
}

// Arange returns values start, start+step, ... up to but excluding stop.
// A range already crossed yields an empty slice.
func Arange(start, stop, step float64) ([]float64, error) {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("arange step must be finite and non-zero: %f", step)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("arange bounds must be finite: %f, %f", start, stop)
	}

	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}
