package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
// Swapped bounds are reordered before clamping.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b agree within eps, using an absolute
// comparison near zero and a relative one otherwise. Non-positive eps falls
// back to a default of 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals rounds values with magnitude below 1e-30 to exact zero.
// Recursive filter states shrink toward the denormal range on silence and
// stall the FPU there; flushing keeps feedback loops fast.
func FlushDenormals(x float64) float64 {
	const threshold = 1e-30
	if x > -threshold && x < threshold {
		return 0
	}

	return x
}

// DBToLinear converts decibels to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to decibels (20*log10 convention).
// Zero maps to -Inf, negative amplitudes to NaN.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DBPowerToLinear converts decibels to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts linear power to decibels (10*log10 convention).
// Zero maps to -Inf, negative powers to NaN.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
