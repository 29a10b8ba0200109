// Package special provides special mathematical functions shared across the
// library.
//
// It currently covers the modified Bessel function of the first kind, order
// zero, in both its direct (I0) and exponentially scaled (I0e) forms. The
// Kaiser window and the Kaiser-windowed FIR design in the resampler evaluate
// through these functions, so their accuracy bounds the accuracy of everything
// built on top.
//
// All functions are pure: value in, value out, no allocation, no shared
// mutable state. They are safe to call from any number of goroutines.
package special
