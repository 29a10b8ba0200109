package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/signal/window"
)

// polyphase holds the prototype lowpass and its decomposition into up
// branches, where branch p carries taps p, p+up, p+2*up, ...
type polyphase struct {
	taps     []float64
	branches [][]float64
	maxLen   int
}

// designPolyphase builds the anti-aliasing prototype for the ratio up/down:
// a sinc at the narrower of the two Nyquist bands, shaped by a Kaiser window
// and normalized to a per-branch DC gain of one.
func designPolyphase(up, down int, cfg config) (polyphase, error) {
	if up <= 0 || down <= 0 {
		return polyphase{}, ErrInvalidRatio
	}
	if cfg.tapsPerPhase <= 0 {
		return polyphase{}, errors.New("resample: taps per phase must be > 0")
	}
	if !(cfg.cutoffScale > 0 && cfg.cutoffScale <= 1) {
		return polyphase{}, errors.New("resample: cutoff scale must be in (0,1]")
	}

	total := up * cfg.tapsPerPhase

	fc := 0.5 / float64(max(up, down)) * cfg.cutoffScale
	if fc <= 0 || fc >= 0.5 {
		return polyphase{}, fmt.Errorf("resample: invalid cutoff %.6f", fc)
	}

	win, err := window.Kaiser(total, cfg.kaiserBeta)
	if err != nil {
		return polyphase{}, fmt.Errorf("resample: prototype window: %w", err)
	}

	taps := make([]float64, total)
	mid := 0.5 * float64(total-1)

	var sum float64
	for n := range taps {
		t := float64(n) - mid
		taps[n] = 2 * fc * sinc(2*fc*t) * win[n]
		sum += taps[n]
	}

	if sum == 0 {
		return polyphase{}, errors.New("resample: designed zero-sum filter")
	}

	norm := float64(up) / sum
	for i := range taps {
		taps[i] *= norm
	}

	branches := make([][]float64, up)
	maxLen := 0

	for p := range branches {
		branch := make([]float64, 0, (total-p+up-1)/up)
		for i := p; i < len(taps); i += up {
			branch = append(branch, taps[i])
		}

		branches[p] = branch
		maxLen = max(maxLen, len(branch))
	}

	return polyphase{taps: taps, branches: branches, maxLen: maxLen}, nil
}

// approximateRatio expands x into a continued fraction and returns the last
// convergent whose denominator stays within maxDen.
func approximateRatio(x float64, maxDen int) (num, den int) {
	if maxDen <= 0 {
		maxDen = 4096
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return 1, 1
	}

	h0, k0 := 1.0, 0.0
	h1, k1 := math.Floor(x), 1.0
	rem := x

	for {
		frac := rem - math.Floor(rem)
		if frac == 0 {
			break
		}

		rem = 1 / frac
		a := math.Floor(rem)

		h2, k2 := a*h1+h0, a*k1+k0
		if k2 > float64(maxDen) {
			break
		}

		h0, k0 = h1, k1
		h1, k1 = h2, k2
	}

	num = int(math.Round(h1))
	den = int(math.Round(k1))
	if den <= 0 {
		return 1, 1
	}

	g := gcd(num, den)

	return num / g, den / g
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

func sinc(t float64) float64 {
	if math.Abs(t) < 1e-12 {
		return 1
	}

	pt := math.Pi * t

	return math.Sin(pt) / pt
}
