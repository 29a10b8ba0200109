package biquad

// Chain runs samples through a series of biquad sections, each stage feeding
// the next. Higher-order designs (Butterworth, Chebyshev) are factored into
// second-order stages and realized as a chain.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption adjusts how NewChain assembles the cascade.
type ChainOption func(*chainConfig)

// WithGain scales the input by g ahead of the first section. Unity when
// omitted.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one section per coefficient set, kept in the
// order given.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Chain{gain: cfg.gain}
	c.rebuild(coeffs)

	return c
}

// rebuild allocates fresh zero-state sections for the given coefficients.
func (c *Chain) rebuild(coeffs []Coefficients) {
	c.sections = make([]Section, len(coeffs))
	for i, sc := range coeffs {
		c.sections[i].Coefficients = sc
	}
}

// ProcessSample pushes one sample through every section and returns the
// cascade output. The input gain, when not unity, applies before the first
// section.
func (c *Chain) ProcessSample(x float64) float64 {
	y := c.gain * x
	for i := range c.sections {
		y = c.sections[i].ProcessSample(y)
	}

	return y
}

// ProcessBlock filters buf in place through the whole cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst without touching src. The slices must
// have equal length.
func (c *Chain) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	copy(dst, src)
	c.ProcessBlock(dst[:len(src)])
}

// Reset zeroes the delay lines of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order reports the filter order, counting two per section.
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections reports how many sections the cascade holds.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain reports the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// SetGain replaces the input gain.
func (c *Chain) SetGain(g float64) { c.gain = g }

// UpdateCoefficients swaps in a new coefficient set and gain. When the
// section count is unchanged each stage keeps its delay-line state, so a
// running filter can retune without a step in its output. A different count
// rebuilds the cascade from zero state.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients, gain float64) {
	c.gain = gain

	if len(coeffs) != len(c.sections) {
		c.rebuild(coeffs)
		return
	}

	for i, sc := range coeffs {
		c.sections[i].Coefficients = sc
	}
}

// Section exposes the i-th stage for inspection or direct tweaking.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State captures the delay-line contents of every section.
func (c *Chain) State() [][2]float64 {
	snap := make([][2]float64, len(c.sections))
	for i := range c.sections {
		snap[i] = c.sections[i].State()
	}

	return snap
}

// SetState restores a snapshot taken with State. Its length must equal
// NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
