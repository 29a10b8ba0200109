// Package resample converts between sample rates with a polyphase FIR whose
// prototype is a Kaiser-windowed sinc.
//
// Quality modes trade CPU for stopband attenuation and passband flatness:
//
//	QualityFast      16 taps/phase, ~55 dB stopband
//	QualityBalanced  32 taps/phase, ~75 dB stopband
//	QualityBest      64 taps/phase, ~90 dB stopband
//
// Common entry points:
//   - NewRational(up, down, opts...) for a known integer ratio
//   - NewForRates(inRate, outRate, opts...) for arbitrary rates
//   - Resample, Upsample2x, Downsample2x one-shot helpers
//
// A Resampler carries filter history across Process calls, so feeding a
// stream in chunks produces the same output as one large block.
package resample
