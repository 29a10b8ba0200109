package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-signal/special"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeTriangle
	TypeHann
	TypeHamming
	TypeGeneralHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeNuttall
	TypeFlatTop
	TypeCosine
	TypeWelch
	TypeLanczos
	TypeGauss
	TypeGeneralGauss
	TypeTukey
	TypeKaiser
	TypeGeneralCosine
)

// Option adjusts window generation.
type Option func(*config)

type config struct {
	alpha        float64
	exponent     float64
	periodic     bool
	bartlett     bool
	customCoeffs []float64
}

// WithAlpha sets the shape parameter of parametric windows: beta for Kaiser,
// taper fraction for Tukey, width for Gauss, alpha for the general Hamming
// family. Negative values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithExponent sets the shape power of the general Gaussian window.
func WithExponent(p float64) Option {
	return func(c *config) {
		if p > 0 {
			c.exponent = p
		}
	}
}

// WithPeriodic selects the periodic form used for FFT framing. A periodic
// window of length N equals the symmetric window of length N+1 with its
// last coefficient dropped.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithBartlett selects the zero-endpoint Bartlett variant of Triangle.
func WithBartlett() Option {
	return func(c *config) {
		c.bartlett = true
	}
}

// WithCustomCoeffs supplies the cosine-term coefficients for GeneralCosine.
func WithCustomCoeffs(coeffs []float64) Option {
	copied := append([]float64(nil), coeffs...)

	return func(c *config) {
		c.customCoeffs = copied
	}
}

// Generate returns window coefficients of the given length. Lengths below
// one yield nil; a length of exactly one yields [1] for every type.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := config{alpha: 1, exponent: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if length == 1 {
		return []float64{1}
	}

	if t == TypeTriangle && !cfg.bartlett {
		return triangleWindow(length, cfg.periodic)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = valueAt(t, gridPosition(i, length, cfg.periodic), cfg)
	}

	return out
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// Boxcar returns all-ones window coefficients.
func Boxcar(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeRectangular, size, opts...), nil
}

// Triangle returns triangular window coefficients with non-zero endpoints.
func Triangle(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeTriangle, size, opts...), nil
}

// Bartlett returns triangular window coefficients with zero endpoints.
func Bartlett(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeTriangle, size, append(opts, WithBartlett())...), nil
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeHann, size, opts...), nil
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeHamming, size, opts...), nil
}

// GeneralHamming returns general Hamming window coefficients for alpha in
// [0, 1]. Alpha 0.54 reproduces Hamming, 0.5 reproduces Hann.
func GeneralHamming(size int, alpha float64, opts ...Option) ([]float64, error) {
	if err := validateGeneralHamming(size, alpha); err != nil {
		return nil, err
	}

	return Generate(TypeGeneralHamming, size, append(opts, WithAlpha(alpha))...), nil
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeBlackman, size, opts...), nil
}

// BlackmanHarris returns 4-term Blackman-Harris window coefficients.
func BlackmanHarris(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeBlackmanHarris, size, opts...), nil
}

// Nuttall returns Nuttall window coefficients.
func Nuttall(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeNuttall, size, opts...), nil
}

// FlatTop returns 5-term flat-top window coefficients.
func FlatTop(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeFlatTop, size, opts...), nil
}

// Cosine returns half-sine window coefficients.
func Cosine(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeCosine, size, opts...), nil
}

// Welch returns parabolic Welch window coefficients.
func Welch(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeWelch, size, opts...), nil
}

// Lanczos returns Lanczos (sinc) window coefficients.
func Lanczos(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeLanczos, size, opts...), nil
}

// Kaiser returns Kaiser window coefficients for shape parameter beta.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	return Generate(TypeKaiser, size, append(opts, WithAlpha(beta))...), nil
}

// Tukey returns Tukey window coefficients with taper fraction alpha.
func Tukey(size int, alpha float64, opts ...Option) ([]float64, error) {
	if err := validateTukey(size, alpha); err != nil {
		return nil, err
	}

	return Generate(TypeTukey, size, append(opts, WithAlpha(alpha))...), nil
}

// Gaussian returns Gaussian window coefficients. Sigma is the standard
// deviation normalized to half the window span.
func Gaussian(size int, sigma float64, opts ...Option) ([]float64, error) {
	if err := validateGauss(size, sigma); err != nil {
		return nil, err
	}

	return Generate(TypeGauss, size, append(opts, WithAlpha(sigma))...), nil
}

// GeneralGaussian returns generalized Gaussian window coefficients with
// shape power p. p=1 reproduces Gaussian; large p approaches a boxcar.
func GeneralGaussian(size int, p, sigma float64, opts ...Option) ([]float64, error) {
	if err := validateGeneralGauss(size, p, sigma); err != nil {
		return nil, err
	}

	opts = append(opts, WithAlpha(sigma), WithExponent(p))

	return Generate(TypeGeneralGauss, size, opts...), nil
}

// GeneralCosine returns window coefficients for an arbitrary cosine series.
// Coefficients multiply cos(2*pi*k*x); see the predefined tables for the
// sign convention.
func GeneralCosine(size int, coeffs []float64, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	if len(coeffs) == 0 {
		return nil, errEmptyCoeffs
	}

	return Generate(TypeGeneralCosine, size, append(opts, WithCustomCoeffs(coeffs))...), nil
}

// EquivalentNoiseBandwidth returns the ENBW of a window in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients into a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// valueAt evaluates one window coefficient at normalized position x in [0, 1].
func valueAt(t Type, x float64, cfg config) float64 {
	x = math.Min(math.Max(x, 0), 1)

	switch t {
	case TypeRectangular:
		return 1
	case TypeTriangle:
		return 1 - math.Abs(2*x-1)
	case TypeHann:
		return cosineSeries(x, hannCoeffs)
	case TypeHamming:
		return cosineSeries(x, hammingCoeffs)
	case TypeGeneralHamming:
		return cosineSeries(x, generalHammingCoeffs(cfg.alpha))
	case TypeBlackman:
		return cosineSeries(x, blackmanCoeffs)
	case TypeBlackmanHarris:
		return cosineSeries(x, blackmanHarrisCoeffs)
	case TypeNuttall:
		return cosineSeries(x, nuttallCoeffs)
	case TypeFlatTop:
		return cosineSeries(x, flatTopCoeffs)
	case TypeCosine:
		return math.Sin(math.Pi * x)
	case TypeWelch:
		d := x - 0.5
		return 1 - 4*d*d
	case TypeLanczos:
		return sinc(2*x - 1)
	case TypeGauss:
		return gaussValue(x, cfg.alpha, 1)
	case TypeGeneralGauss:
		return gaussValue(x, cfg.alpha, cfg.exponent)
	case TypeTukey:
		return tukeyValue(x, cfg.alpha)
	case TypeKaiser:
		return kaiserValue(x, cfg.alpha)
	case TypeGeneralCosine:
		if len(cfg.customCoeffs) == 0 {
			return 1
		}

		return cosineSeries(x, cfg.customCoeffs)
	default:
		return 1
	}
}

// cosineSeries sums a cosine polynomial at normalized position x. The k=0
// term needs no Cos call since cos(0) is 1.
func cosineSeries(x float64, coeffs []float64) float64 {
	w := 2 * math.Pi * x

	sum := coeffs[0]
	for k := 1; k < len(coeffs); k++ {
		sum += coeffs[k] * math.Cos(float64(k)*w)
	}

	return sum
}

// gridPosition maps sample index n to [0, 1]. The periodic grid divides by
// size instead of size-1, so position 1 is never reached.
func gridPosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	if periodic {
		return float64(n) / float64(size)
	}

	return float64(n) / float64(size-1)
}

// triangleWindow is the half-sample-shifted triangle with non-zero
// endpoints. The shift depends on the parity of the symmetric length, so it
// is built from indices rather than normalized positions.
func triangleWindow(length int, periodic bool) []float64 {
	m := length
	if periodic {
		m = length + 1
	}

	den := float64(m)
	if m%2 == 1 {
		den = float64(m + 1)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = 1 - math.Abs(float64(2*i-(m-1)))/den
	}

	return out
}

// kaiserValue evaluates the Kaiser window through the scaled Bessel ratio
// I0e(arg)/I0e(beta) * exp(arg-beta), which stays finite for beta beyond
// the overflow bound of I0 itself.
func kaiserValue(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	arg := beta * math.Sqrt(math.Max(0, 1-r*r))

	return special.I0e(arg) / special.I0e(beta) * math.Exp(arg-beta)
}

// tukeyValue tapers the first and last alpha/2 fractions with a raised
// cosine and leaves the middle flat. The trailing edge reuses the leading
// one mirrored about the center.
func tukeyValue(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return cosineSeries(x, hannCoeffs)
	}

	if x > 0.5 {
		x = 1 - x
	}

	if x >= alpha/2 {
		return 1
	}

	return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
}

func gaussValue(x, sigma, p float64) float64 {
	if sigma <= 0 {
		return 1
	}

	r := (2*x - 1) / sigma
	if p == 1 {
		return math.Exp(-0.5 * r * r)
	}

	return math.Exp(-0.5 * math.Pow(r*r, p))
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	return math.Sin(math.Pi*x) / (math.Pi * x)
}
