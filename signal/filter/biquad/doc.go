// Package biquad runs second-order IIR filter sections.
//
// [Section] evaluates one second-order stage in Direct Form II Transposed
// from its [Coefficients]; [Chain] cascades several stages into a
// higher-order filter, and [Sosfilt] applies such a cascade to a finished
// signal in one call.
//
// Only the runtime lives here. Computing coefficients (Butterworth,
// Chebyshev) is the job of signal/filter/design.
package biquad
