package moog

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const (
	maxCutoff    = 1.0
	maxResonance = 4.0

	// cutoffScale maps the normalized cutoff onto the stage coefficient.
	cutoffScale = 1.16
	// inputZero is the weight of the previous stage input in each pole.
	inputZero = 0.3
)

// State holds the memory of the four stages.
type State struct {
	Input  [4]float64 // previous input of each stage
	Output [4]float64 // previous output of each stage
}

// Ladder is a 4-pole resonant low-pass filter.
type Ladder struct {
	state State
}

// New returns a ladder with zero state.
func New() *Ladder {
	return &Ladder{}
}

// Process filters a block. cutoff must be in [0, 1] and resonance in [0, 4].
func (l *Ladder) Process(in []float64, cutoff, resonance float64) ([]float64, error) {
	if err := validateFiniteRange(cutoff, 0, maxCutoff, "cutoff"); err != nil {
		return nil, err
	}
	if err := validateFiniteRange(resonance, 0, maxResonance, "resonance"); err != nil {
		return nil, err
	}

	f := cutoff * cutoffScale
	fSquared := f * f
	fb := resonance * (1 - 0.15*fSquared)
	gain := 0.35013 * fSquared * fSquared
	decay := 1 - f

	i1, i2, i3, i4 := l.state.Input[0], l.state.Input[1], l.state.Input[2], l.state.Input[3]
	o1, o2, o3, o4 := l.state.Output[0], l.state.Output[1], l.state.Output[2], l.state.Output[3]

	out := make([]float64, len(in))
	for i, x := range in {
		x = (x - o4*fb) * gain

		o1 = x + inputZero*i1 + decay*o1
		o2 = o1 + inputZero*i2 + decay*o2
		o3 = o2 + inputZero*i3 + decay*o3
		o4 = o3 + inputZero*i4 + decay*o4

		i1, i2, i3, i4 = x, o1, o2, o3
		out[i] = o4
	}

	l.state = State{
		Input:  [4]float64{core.Sanitize(i1), core.Sanitize(i2), core.Sanitize(i3), core.Sanitize(i4)},
		Output: [4]float64{core.Sanitize(o1), core.Sanitize(o2), core.Sanitize(o3), core.Sanitize(o4)},
	}

	return out, nil
}

// Reset clears the stage memory.
func (l *Ladder) Reset() {
	l.state = State{}
}

// State returns a copy of the current stage memory.
func (l *Ladder) State() State {
	return l.state
}

// SetState restores an externally saved stage memory.
func (l *Ladder) SetState(state State) error {
	for i := range 4 {
		if !core.IsFinite(state.Input[i]) || !core.IsFinite(state.Output[i]) {
			return fmt.Errorf("moog: state contains NaN or Inf")
		}
	}

	l.state = state

	return nil
}

func validateFiniteRange(value, min, max float64, name string) error {
	if !core.IsFinite(value) {
		return fmt.Errorf("moog: %s must be finite: %v", name, value)
	}

	if value < min || value > max {
		return fmt.Errorf("moog: %s must be in [%g, %g]: %f", name, min, max, value)
	}

	return nil
}
