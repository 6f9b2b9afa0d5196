// Package signal provides the tone and noise generators.
//
// Generators have no audio input: each Process call takes the number of
// frames to produce and continues from where the previous call stopped.
package signal
