// Package wave generates deterministic test and excitation signals.
package wave

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-signal/signal/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a signal generator with both processor and
// generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Square generates a rectangular wave. The duty cycle in [0, 1] is the
// fraction of each period spent at +amplitude; the rest sits at -amplitude.
func (g *Generator) Square(freqHz, amplitude float64, samples int, duty float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("square samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("square sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if !(duty >= 0 && duty <= 1) {
		return nil, fmt.Errorf("square duty must be in [0, 1]: %f", duty)
	}

	out := make([]float64, samples)
	for i := range out {
		if g.phaseFrac(freqHz, i) < duty {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}

	return out, nil
}

// Sawtooth generates a sawtooth wave. Width in [0, 1] is the fraction of each
// period spent rising: 1 is a rising ramp, 0 a falling ramp, 0.5 a triangle.
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int, width float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sawtooth samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sawtooth sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if !(width >= 0 && width <= 1) {
		return nil, fmt.Errorf("sawtooth width must be in [0, 1]: %f", width)
	}

	out := make([]float64, samples)
	for i := range out {
		frac := g.phaseFrac(freqHz, i)
		if frac < width {
			out[i] = amplitude * (2*frac/width - 1)
		} else {
			out[i] = amplitude * (1 - 2*(frac-width)/(1-width))
		}
	}

	return out, nil
}

// Chirp generates a linear sweep whose instantaneous frequency moves from f0
// to f1 across the generated span.
func (g *Generator) Chirp(f0, f1, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("chirp samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("chirp sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate

	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		phase := 2 * math.Pi * (f0 + (f1-f0)*t/(2*duration)) * t
		out[i] = amplitude * math.Sin(phase)
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
// Each call starts from the configured seed.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// phaseFrac returns the position of sample i inside its waveform period as a
// fraction in [0, 1).
func (g *Generator) phaseFrac(freqHz float64, i int) float64 {
	frac := math.Mod(freqHz*float64(i)/g.cfg.SampleRate, 1)
	if frac < 0 {
		frac++
	}

	return frac
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
