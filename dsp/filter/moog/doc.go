// Package moog provides a four-pole Moog-style ladder low-pass filter.
//
// The ladder is four cascaded one-pole stages with the output fed back to
// the input through the resonance gain. Cutoff is a normalized control in
// [0, 1] rather than a frequency; resonance in [0, 4] reaches
// self-oscillation near the top of its range.
//
// Cutoff and resonance are passed on every block, so they can be modulated
// at control rate. The ladder keeps the input and output of every stage
// between calls.
package moog
