// Package biquad provides a second-order IIR filter whose coefficients are
// supplied by the caller on every block.
//
// A [Biquad] keeps only its direct form I memory (two inputs, two outputs).
// The six [Coefficients] arrive with each call so that an external designer
// can sweep them over time; they are divided by A0 before use. The block
// loop runs on a kernel selected once for the running CPU.
package biquad
