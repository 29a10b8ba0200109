package filter

import (
	"fmt"

	"github.com/cwbudde/algo-signal/signal/core"
)

// PadType selects how FiltFilt extends the signal beyond its edges before
// filtering, to suppress startup transients.
type PadType int

const (
	// PadOdd reflects the signal around its endpoint values, preserving
	// slope. This is the default and handles trends well.
	PadOdd PadType = iota
	// PadEven mirrors the signal without the endpoint reflection.
	PadEven
	// PadConstant repeats the first and last sample.
	PadConstant
	// PadNone disables edge extension entirely.
	PadNone
)

// filtfiltConfig holds options for FiltFilt.
type filtfiltConfig struct {
	padType PadType
	padLen  int // negative selects the default 3*max(len(b), len(a))
}

// FiltFiltOption configures FiltFilt.
type FiltFiltOption func(*filtfiltConfig)

// WithPadType selects the edge extension method. Default is [PadOdd].
func WithPadType(p PadType) FiltFiltOption {
	return func(cfg *filtfiltConfig) { cfg.padType = p }
}

// WithPadLen sets the number of samples extended past each edge. Zero
// disables extension; the default is 3*max(len(b), len(a)).
func WithPadLen(n int) FiltFiltOption {
	return func(cfg *filtfiltConfig) { cfg.padLen = n }
}

// FiltFilt applies the filter twice, forward and backward, producing a
// zero-phase result with the squared magnitude response of the underlying
// filter. The output has the same length as x.
//
// Both passes start from scaled steady-state conditions ([LfilterZi]) and
// the signal is edge-extended before filtering, so startup transients are
// largely eliminated. x must be longer than the pad length.
func FiltFilt(b, a, x []float64, opts ...FiltFiltOption) ([]float64, error) {
	cfg := filtfiltConfig{padType: PadOdd, padLen: -1}
	for _, o := range opts {
		o(&cfg)
	}

	switch cfg.padType {
	case PadOdd, PadEven, PadConstant, PadNone:
	default:
		return nil, fmt.Errorf("filter: unknown pad type %d", cfg.padType)
	}

	edge := cfg.padLen
	if edge < 0 {
		edge = 3 * max(len(b), len(a))
	}
	if cfg.padType == PadNone {
		edge = 0
	}
	if edge > 0 && len(x) <= edge {
		return nil, ErrInputTooShort
	}

	zi, err := LfilterZi(b, a)
	if err != nil {
		return nil, err
	}

	ext := extendSignal(x, edge, cfg.padType)

	// Forward pass, primed for the first extended sample.
	scaled := make([]float64, len(zi))
	if len(ext) > 0 {
		for i := range zi {
			scaled[i] = zi[i] * ext[0]
		}
	}
	y, _, err := LfilterIC(b, a, ext, scaled)
	if err != nil {
		return nil, err
	}

	// Backward pass over the reversed forward output.
	core.Reverse(y)
	if len(y) > 0 {
		for i := range zi {
			scaled[i] = zi[i] * y[0]
		}
	}
	y, _, err = LfilterIC(b, a, y, scaled)
	if err != nil {
		return nil, err
	}
	core.Reverse(y)

	if edge > 0 {
		y = y[edge : len(y)-edge]
	}

	return y, nil
}

// extendSignal returns x with edge samples of the chosen extension prepended
// and appended. The caller guarantees edge < len(x) for the reflecting
// types. The result never aliases x.
func extendSignal(x []float64, edge int, p PadType) []float64 {
	out := make([]float64, len(x)+2*edge)
	copy(out[edge:], x)

	if edge == 0 {
		return out
	}

	first, last := x[0], x[len(x)-1]
	right := edge + len(x)

	switch p {
	case PadOdd:
		for i := 0; i < edge; i++ {
			out[i] = 2*first - x[edge-i]
			out[right+i] = 2*last - x[len(x)-2-i]
		}
	case PadEven:
		for i := 0; i < edge; i++ {
			out[i] = x[edge-i]
			out[right+i] = x[len(x)-2-i]
		}
	case PadConstant:
		for i := 0; i < edge; i++ {
			out[i] = first
			out[right+i] = last
		}
	}

	return out
}
