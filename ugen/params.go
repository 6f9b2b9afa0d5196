package ugen

import "github.com/cwbudde/algo-ugen/dsp/filter/biquad"

// Params carries the control-rate parameters of one Process call. Each
// unit accepts only its own params type.
type Params interface {
	isParams()
}

// EchoParams controls an echo unit. Delay is in seconds and is clamped to
// the constructed maximum.
type EchoParams struct {
	Delay    float64
	Feedback float64
	Damping  float64
}

// RampParams sets the time in seconds to reach each new target.
type RampParams struct {
	Period float64
}

// LagParams sets the 60 dB convergence time in seconds.
type LagParams struct {
	LagTime float64
}

// BiquadParams carries the raw transfer-function coefficients.
type BiquadParams struct {
	Coefficients biquad.Coefficients
}

// PassParams sets the cutoff frequency in Hz.
type PassParams struct {
	Cutoff float64
}

// MoogParams sets the normalized cutoff in [0, 1] and resonance in [0, 4].
type MoogParams struct {
	Cutoff    float64
	Resonance float64
}

// OscillatorParams sets the frequency in Hz.
type OscillatorParams struct {
	Freq float64
}

// NoiseParams is empty; noise takes only a frame count. A nil Params is
// accepted in its place.
type NoiseParams struct{}

// BitCrusherParams sets the bit depth in [1, 32] and the sample-and-hold
// rate as a fraction of the sample rate in [0, 1].
type BitCrusherParams struct {
	Bits                float64
	NormalizedFrequency float64
}

func (EchoParams) isParams()       {}
func (RampParams) isParams()       {}
func (LagParams) isParams()        {}
func (BiquadParams) isParams()     {}
func (PassParams) isParams()       {}
func (MoogParams) isParams()       {}
func (OscillatorParams) isParams() {}
func (NoiseParams) isParams()      {}
func (BitCrusherParams) isParams() {}
