package resample

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRatio reports a conversion ratio with a non-positive term.
	ErrInvalidRatio = errors.New("resample: conversion ratio must be positive")
	// ErrInvalidRate reports a sample rate that is not positive and finite.
	ErrInvalidRate = errors.New("resample: sample rate must be positive and finite")
)

// Quality selects a predefined anti-aliasing filter trade-off.
type Quality int

const (
	// QualityFast favors throughput over stopband depth.
	QualityFast Quality = iota
	// QualityBalanced splits the difference and is the default.
	QualityBalanced
	// QualityBest favors stopband attenuation and passband flatness.
	QualityBest
)

// Profile describes the filter parameters behind a quality mode.
type Profile struct {
	TapsPerPhase      int
	CutoffScale       float64
	KaiserBeta        float64
	NominalStopbandDB float64
}

var profiles = [QualityBest + 1]Profile{
	QualityFast:     {TapsPerPhase: 16, CutoffScale: 0.88, KaiserBeta: 5.0, NominalStopbandDB: 55},
	QualityBalanced: {TapsPerPhase: 32, CutoffScale: 0.92, KaiserBeta: 7.5, NominalStopbandDB: 75},
	QualityBest:     {TapsPerPhase: 64, CutoffScale: 0.96, KaiserBeta: 9.0, NominalStopbandDB: 90},
}

// QualityProfile returns the default parameters for quality mode q.
// Unknown modes map to QualityBalanced.
func QualityProfile(q Quality) Profile {
	if q < QualityFast || q > QualityBest {
		q = QualityBalanced
	}

	return profiles[q]
}

type config struct {
	quality      Quality
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
	maxDen       int
}

// Option adjusts resampler construction.
type Option func(*config)

// WithQuality picks one of the predefined anti-aliasing modes.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerPhase overrides the number of taps in each polyphase branch.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithCutoffScale overrides the normalized cutoff scale in (0, 1], where 1
// is the theoretical anti-aliasing cutoff.
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithKaiserBeta overrides the Kaiser window shape parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta > 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithMaxDenominator caps the denominator used when approximating a rate
// ratio in NewForRates.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

// resolveConfig applies opts over the defaults, then fills anything still
// unset from the quality profile.
func resolveConfig(opts []Option) config {
	cfg := config{quality: QualityBalanced, maxDen: 4096}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	prof := QualityProfile(cfg.quality)
	if cfg.tapsPerPhase <= 0 {
		cfg.tapsPerPhase = prof.TapsPerPhase
	}
	if cfg.cutoffScale <= 0 || cfg.cutoffScale > 1 {
		cfg.cutoffScale = prof.CutoffScale
	}
	if cfg.kaiserBeta <= 0 {
		cfg.kaiserBeta = prof.KaiserBeta
	}

	return cfg
}

// Resampler performs rational sample-rate conversion with a polyphase FIR.
// It is not safe for concurrent use.
type Resampler struct {
	up   int
	down int

	quality Quality
	proto   polyphase

	phase     int
	nextInput int
	totalIn   int
	history   []float64
}

// NewRational creates a resampler for the ratio up/down. The ratio is
// reduced, so NewRational(320, 294) converts by 160/147.
func NewRational(up, down int, opts ...Option) (*Resampler, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}

	if g := gcd(up, down); g > 1 {
		up /= g
		down /= g
	}

	cfg := resolveConfig(opts)

	proto, err := designPolyphase(up, down, cfg)
	if err != nil {
		return nil, err
	}

	return &Resampler{
		up:      up,
		down:    down,
		quality: cfg.quality,
		proto:   proto,
		history: make([]float64, 0, max(0, proto.maxLen-1)),
	}, nil
}

// NewForRates creates a resampler converting inRate to outRate. The rate
// ratio is approximated by a continued fraction whose denominator is capped
// by WithMaxDenominator.
func NewForRates(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if !(inRate > 0) || !(outRate > 0) || math.IsInf(inRate, 0) || math.IsInf(outRate, 0) {
		return nil, ErrInvalidRate
	}

	cfg := resolveConfig(opts)
	num, den := approximateRatio(outRate/inRate, cfg.maxDen)

	return NewRational(num, den, opts...)
}

// Resample converts input by the ratio up/down as a one-shot helper.
func Resample(input []float64, up, down int, opts ...Option) ([]float64, error) {
	rs, err := NewRational(up, down, opts...)
	if err != nil {
		return nil, err
	}

	return rs.Process(input), nil
}

// Upsample2x doubles the sample rate of input.
func Upsample2x(input []float64, opts ...Option) ([]float64, error) {
	return Resample(input, 2, 1, opts...)
}

// Downsample2x halves the sample rate of input.
func Downsample2x(input []float64, opts ...Option) ([]float64, error) {
	return Resample(input, 1, 2, opts...)
}

// Reset clears the filter history and stream position.
func (r *Resampler) Reset() {
	r.phase = 0
	r.nextInput = 0
	r.totalIn = 0
	r.history = r.history[:0]
}

// Process converts one block of input. History carries over between calls,
// so chunked processing matches one-shot processing sample for sample.
func (r *Resampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}

	out := make([]float64, 0, r.PredictOutputLen(len(input)))

	buf := make([]float64, 0, len(r.history)+len(input))
	buf = append(buf, r.history...)
	buf = append(buf, input...)

	// Absolute stream index of buf[0] and of the newest available sample.
	base := r.totalIn - len(r.history)
	last := r.totalIn + len(input) - 1

	for r.nextInput <= last {
		taps := r.proto.branches[r.phase]

		pos := r.nextInput - base
		kEnd := min(len(taps)-1, pos)

		var y float64
		for k := 0; k <= kEnd; k++ {
			y += taps[k] * buf[pos-k]
		}

		out = append(out, y)

		r.phase += r.down
		r.nextInput += r.phase / r.up
		r.phase %= r.up
	}

	r.totalIn += len(input)

	keep := min(len(buf), r.proto.maxLen-1)
	r.history = append(r.history[:0], buf[len(buf)-keep:]...)

	return out
}

// PredictOutputLen returns the number of samples the next Process call will
// produce for inputLen input samples.
func (r *Resampler) PredictOutputLen(inputLen int) int {
	if inputLen <= 0 {
		return 0
	}

	last := r.totalIn + inputLen - 1
	idx := r.nextInput
	phase := r.phase

	count := 0
	for idx <= last {
		count++
		phase += r.down
		idx += phase / r.up
		phase %= r.up
	}

	return count
}

// Ratio returns the reduced up/down conversion factors.
func (r *Resampler) Ratio() (up, down int) {
	return r.up, r.down
}

// Quality reports which quality mode the resampler was built with.
func (r *Resampler) Quality() Quality {
	return r.quality
}

// TapsPerPhase returns the length of the phase-0 polyphase branch.
func (r *Resampler) TapsPerPhase() int {
	if len(r.proto.branches) == 0 {
		return 0
	}

	return len(r.proto.branches[0])
}

// Prototype returns a copy of the lowpass prototype the polyphase branches
// were drawn from.
func (r *Resampler) Prototype() []float64 {
	return append([]float64(nil), r.proto.taps...)
}
