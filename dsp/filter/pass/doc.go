// Package pass provides second-order Butterworth low-pass and high-pass
// filters designed with the bilinear transform.
//
// When the cutoff changes between blocks the coefficients glide to their
// new values in steps of three samples instead of jumping, so a swept
// cutoff does not click. The first call seeds the filter memory with the
// steady state for its first input sample.
package pass
