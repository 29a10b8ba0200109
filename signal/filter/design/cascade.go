package design

import (
	"math"

	"github.com/cwbudde/algo-signal/signal/filter/biquad"
)

// ButterworthLP designs an order-N Butterworth lowpass as a cascade of
// biquad sections, plus one first-order section when the order is odd.
// The magnitude response is maximally flat and crosses -3.01 dB at freq.
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassSection(freq, butterworthQ(order, i), sampleRate))
	}
	if order&1 == 1 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}
	return sections, nil
}

// ButterworthHP designs an order-N Butterworth highpass as a cascade of
// biquad sections, plus one first-order section when the order is odd.
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, highpassSection(freq, butterworthQ(order, i), sampleRate))
	}
	if order&1 == 1 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}
	return sections, nil
}

// butterworthQ returns the quality factor of the i-th second-order stage of
// an order-N Butterworth filter. The pole pairs sit on the unit circle of
// the s-plane at angles pi*(2i+1)/(2N).
func butterworthQ(order, i int) float64 {
	return 1 / (2 * math.Sin(math.Pi*float64(2*i+1)/float64(2*order)))
}

// bilinearK is the bilinear-transform frequency constant tan(pi*f/fs).
func bilinearK(freq, sampleRate float64) float64 {
	return math.Tan(math.Pi * freq / sampleRate)
}

// firstOrderLP returns a one-pole lowpass packed into biquad form
// (B2 = A2 = 0).
func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k := bilinearK(freq, sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHP returns a one-pole highpass packed into biquad form
// (B2 = A2 = 0).
func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k := bilinearK(freq, sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// cheby1RippleFactors converts a passband ripple in dB to the Type I
// prototype factors: with eps = sqrt(10^(r/10) - 1) and
// mu = asinh(1/eps)/order, the pole pairs sit at damping sinh(mu)*sin(phi)
// and squared magnitude cosh(mu)^2 - sin(phi)^2. r0 is cosh(mu)^2, r1 is
// sinh(mu), and peakScale = 1/sqrt(1+eps^2) pins the ripple peaks of
// even-order cascades to unity gain.
func cheby1RippleFactors(rippleDB float64, order int) (r0, r1, peakScale float64) {
	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)
	sinh := math.Sinh(mu)
	cosh := math.Cosh(mu)
	return cosh * cosh, sinh, 1 / math.Sqrt(1+eps*eps)
}

// cheby2Mu converts a stopband attenuation in dB to the Type II prototype
// parameter mu = asinh(sqrt(10^(r/10) - 1))/order.
func cheby2Mu(rippleDB float64, order int) float64 {
	return math.Asinh(math.Sqrt(math.Pow(10, rippleDB/10)-1)) / float64(order)
}

// cheby1FirstOrderLP packs the real pole of an odd-order Type I lowpass,
// sinh(mu) in the prototype, into a first-order section.
func cheby1FirstOrderLP(k, sinhMu float64) biquad.Coefficients {
	sp := k * sinhMu
	norm := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: sp * norm,
		B1: sp * norm,
		A1: (sp - 1) * norm,
	}
}

// cheby1FirstOrderHP packs the highpass-transformed real pole 1/sinh(mu)
// into a first-order section.
func cheby1FirstOrderHP(k, sinhMu float64) biquad.Coefficients {
	sp := k / sinhMu
	norm := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (sp - 1) * norm,
	}
}

// cheby2FirstOrderLP packs the inverted real pole of an odd-order Type II
// lowpass into a first-order section.
func cheby2FirstOrderLP(wc, mu float64) biquad.Coefficients {
	sp := wc / math.Sinh(mu)
	norm := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: sp * norm,
		B1: sp * norm,
		A1: (sp - 1) * norm,
	}
}

// cheby2FirstOrderHP packs the highpass-transformed Type II real pole into
// a first-order section.
func cheby2FirstOrderHP(wc, mu float64) biquad.Coefficients {
	sp := wc * math.Sinh(mu)
	norm := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (sp - 1) * norm,
	}
}

// Chebyshev1LP designs a Chebyshev Type I lowpass cascade with the given
// passband ripple in dB. Type I trades passband ripple for a steeper
// transition than a Butterworth of the same order; the gain oscillates
// between 0 and -rippleDB across the passband and freq is the point where
// it last touches -rippleDB.
func Chebyshev1LP(freq float64, order int, rippleDB, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}
	if rippleDB <= 0 || math.IsNaN(rippleDB) {
		return nil, ErrInvalidRipple
	}

	r0, r1, peakScale := cheby1RippleFactors(rippleDB, order)
	k := bilinearK(freq, sampleRate)
	k2 := k * k

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		tt := math.Sin(float64(2*i+1) * math.Pi / float64(2*order))
		b := 1 / (r0 - tt*tt)
		a := 2 * k * b * r1 * tt
		t := 1 / (a + b + k2)

		sections = append(sections, biquad.Coefficients{
			B0: k2 * t,
			B1: 2 * k2 * t,
			B2: k2 * t,
			A1: 2 * (k2 - b) * t,
			A2: (b + k2 - a) * t,
		})
	}
	if order&1 == 1 {
		sections = append(sections, cheby1FirstOrderLP(k, r1))
	} else {
		// Even orders sit in a ripple trough at DC; rescale so the
		// ripple peaks reach unity instead of overshooting it.
		sections[0].B0 *= peakScale
		sections[0].B1 *= peakScale
		sections[0].B2 *= peakScale
	}
	return sections, nil
}

// Chebyshev1HP designs a Chebyshev Type I highpass cascade with the given
// passband ripple in dB.
func Chebyshev1HP(freq float64, order int, rippleDB, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}
	if rippleDB <= 0 || math.IsNaN(rippleDB) {
		return nil, ErrInvalidRipple
	}

	r0, r1, peakScale := cheby1RippleFactors(rippleDB, order)
	k := bilinearK(freq, sampleRate)
	k2 := k * k

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		tt := math.Sin(float64(2*i+1) * math.Pi / float64(2*order))
		b := 1 / (r0 - tt*tt)
		a := 2 * k * b * r1 * tt
		t := 1 / (1 + a + b*k2)

		sections = append(sections, biquad.Coefficients{
			B0: t,
			B1: -2 * t,
			B2: t,
			A1: 2 * (b*k2 - 1) * t,
			A2: (1 + b*k2 - a) * t,
		})
	}
	if order&1 == 1 {
		sections = append(sections, cheby1FirstOrderHP(k, r1))
	} else {
		sections[0].B0 *= peakScale
		sections[0].B1 *= peakScale
		sections[0].B2 *= peakScale
	}
	return sections, nil
}

// Chebyshev2LP designs a Chebyshev Type II (inverse Chebyshev) lowpass
// cascade. Type II keeps the passband monotone and places the ripple in the
// stopband instead; rippleDB sets the stopband attenuation and freq is the
// frequency where the gain first reaches -rippleDB.
//
// Each biquad carries an inverted Type I pole pair and a zero on the
// imaginary axis, taken through the bilinear transform and normalized to
// unity gain at DC.
func Chebyshev2LP(freq float64, order int, rippleDB, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}
	if rippleDB <= 0 || math.IsNaN(rippleDB) {
		return nil, ErrInvalidRipple
	}

	wc := bilinearK(freq, sampleRate)
	mu := cheby2Mu(rippleDB, order)

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		phi := float64(2*i+1) * math.Pi / float64(2*order)

		sigma1 := math.Sinh(mu) * math.Sin(phi)
		omega1 := math.Cosh(mu) * math.Cos(phi)
		poleMagSq := sigma1*sigma1 + omega1*omega1

		wpr := wc * sigma1 / poleMagSq
		wpi := wc * omega1 / poleMagSq
		wz := wc / math.Cos(phi)

		wp2 := wpr*wpr + wpi*wpi
		wz2 := wz * wz

		// Analog section (s^2 + wz^2) / (s^2 + 2*wpr*s + wp2) through
		// s -> (z-1)/(z+1), denominator leading coefficient divided out.
		ad0 := 1 + 2*wpr + wp2
		b0 := (1 + wz2) / ad0
		b1 := (-2 + 2*wz2) / ad0
		b2 := (1 + wz2) / ad0
		a1 := (-2 + 2*wp2) / ad0
		a2 := (1 - 2*wpr + wp2) / ad0

		dcGain := (b0 + b1 + b2) / (1 + a1 + a2)

		sections = append(sections, biquad.Coefficients{
			B0: b0 / dcGain,
			B1: b1 / dcGain,
			B2: b2 / dcGain,
			A1: a1,
			A2: a2,
		})
	}
	if order&1 == 1 {
		sections = append(sections, cheby2FirstOrderLP(wc, mu))
	}
	return sections, nil
}

// Chebyshev2HP designs a Chebyshev Type II highpass cascade; rippleDB sets
// the stopband attenuation below freq. Sections are normalized to unity
// gain at Nyquist.
func Chebyshev2HP(freq float64, order int, rippleDB, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}
	if rippleDB <= 0 || math.IsNaN(rippleDB) {
		return nil, ErrInvalidRipple
	}

	wc := bilinearK(freq, sampleRate)
	mu := cheby2Mu(rippleDB, order)

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		phi := float64(2*i+1) * math.Pi / float64(2*order)

		sigma1 := math.Sinh(mu) * math.Sin(phi)
		omega1 := math.Cosh(mu) * math.Cos(phi)

		// The lowpass-to-highpass transform maps the inverted pole back
		// to wc*(sigma1, omega1) and the zero to wc*cos(phi).
		hpSigma := wc * sigma1
		hpOmega := wc * omega1
		hpWz := wc * math.Cos(phi)

		hp2 := hpSigma*hpSigma + hpOmega*hpOmega
		wz2 := hpWz * hpWz

		ad0 := 1 + 2*hpSigma + hp2
		b0 := (1 + wz2) / ad0
		b1 := (-2 + 2*wz2) / ad0
		b2 := (1 + wz2) / ad0
		a1 := (-2 + 2*hp2) / ad0
		a2 := (1 - 2*hpSigma + hp2) / ad0

		nyqGain := (b0 - b1 + b2) / (1 - a1 + a2)

		sections = append(sections, biquad.Coefficients{
			B0: b0 / nyqGain,
			B1: b1 / nyqGain,
			B2: b2 / nyqGain,
			A1: a1,
			A2: a2,
		})
	}
	if order&1 == 1 {
		sections = append(sections, cheby2FirstOrderHP(wc, mu))
	}
	return sections, nil
}
