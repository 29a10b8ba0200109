// Package filter provides transfer-function filtering of finished signals:
// one-shot IIR/FIR filtering ([Lfilter]), steady-state initial conditions
// ([LfilterZi]) and forward-backward zero-phase filtering ([FiltFilt]).
//
// Filters are given in transfer-function form as numerator b and
// denominator a coefficient vectors. The leading denominator coefficient
// a[0] normalizes the remaining coefficients and must be non-zero; FIR
// filters use a = [1].
//
// Streaming runtimes with explicit state live in the biquad and fir
// subpackages; cascade design lives in the design subpackage.
package filter
