package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const (
	defaultBitCrusherMix  = 1.0
	minBitCrusherBitDepth = 1.0
	maxBitCrusherBitDepth = 32.0
	maxBitCrusherRate     = 1.0
)

// BitCrusherOption mutates bit crusher construction parameters.
type BitCrusherOption func(*bitCrusherConfig) error

type bitCrusherConfig struct {
	mix float64
}

// WithBitCrusherMix sets the dry/wet mix in [0, 1].
func WithBitCrusherMix(mix float64) BitCrusherOption {
	return func(cfg *bitCrusherConfig) error {
		if mix < 0 || mix > 1 || !core.IsFinite(mix) {
			return fmt.Errorf("bit crusher mix must be in [0, 1]: %f", mix)
		}
		cfg.mix = mix
		return nil
	}
}

// BitCrusher reduces bit depth and effective sample rate for lo-fi
// aesthetics. It combines two degradation mechanisms:
//
//   - Quantization: snaps samples to a grid of step 0.5^bits. Values are
//     rounded to the nearest step and never clipped.
//
//   - Rate reduction: a phase accumulator advances by the normalized
//     frequency every sample. Only when it crosses 1 is a new input sample
//     quantized; in between the held value is repeated.
//
// A normalized frequency of 1 requantizes every sample; 0.25 holds each
// value for four samples; 0 freezes the output.
type BitCrusher struct {
	mix float64

	phase float64
	held  float64
}

// NewBitCrusher creates a bit crusher.
func NewBitCrusher(opts ...BitCrusherOption) (*BitCrusher, error) {
	cfg := bitCrusherConfig{mix: defaultBitCrusherMix}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &BitCrusher{mix: cfg.mix}, nil
}

// Process crushes a block. bits must be in [1, 32] and may be fractional;
// normalizedFrequency must be in [0, 1].
func (bc *BitCrusher) Process(in []float64, bits, normalizedFrequency float64) ([]float64, error) {
	if bits < minBitCrusherBitDepth || bits > maxBitCrusherBitDepth || !core.IsFinite(bits) {
		return nil, fmt.Errorf("bit crusher bit depth must be in [%g, %g]: %f",
			minBitCrusherBitDepth, maxBitCrusherBitDepth, bits)
	}
	if normalizedFrequency < 0 || normalizedFrequency > maxBitCrusherRate || !core.IsFinite(normalizedFrequency) {
		return nil, fmt.Errorf("bit crusher normalized frequency must be in [0, %g]: %f",
			maxBitCrusherRate, normalizedFrequency)
	}

	step := math.Pow(0.5, bits)
	phase, held := bc.phase, bc.held

	out := make([]float64, len(in))
	for i, x := range in {
		phase += normalizedFrequency
		if phase >= 1 {
			held = step * math.Floor(x/step+0.5)
			phase--
		}
		out[i] = x*(1-bc.mix) + held*bc.mix
	}

	bc.phase, bc.held = phase, held

	return out, nil
}

// SetMix sets the dry/wet mix in [0, 1].
func (bc *BitCrusher) SetMix(mix float64) error {
	if mix < 0 || mix > 1 || !core.IsFinite(mix) {
		return fmt.Errorf("bit crusher mix must be in [0, 1]: %f", mix)
	}
	bc.mix = mix
	return nil
}

// Mix returns the dry/wet mix.
func (bc *BitCrusher) Mix() float64 { return bc.mix }

// Held returns the value currently repeated by the sample-and-hold.
func (bc *BitCrusher) Held() float64 { return bc.held }

// Reset clears the sample-and-hold state.
func (bc *BitCrusher) Reset() {
	bc.phase = 0
	bc.held = 0
}
