package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	// Sine is sin(phase) over a phase range of 2*pi.
	Sine Waveform = iota
	// Saw falls linearly from 1 to -1 over a phase range of 2.
	Saw
	// Triangle rises from -1 to 1 and falls back over a phase range of 4.
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// ParseWaveform returns the waveform with the given name.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine", "sin":
		return Sine, nil
	case "saw":
		return Saw, nil
	case "triangle", "tri":
		return Triangle, nil
	default:
		return 0, fmt.Errorf("signal: unknown waveform %q", name)
	}
}

// Oscillator is a phase accumulator followed by a waveform shaper.
type Oscillator struct {
	sampleRate float64
	waveform   Waveform

	shape    func(phase float64) float64
	maxPhase float64
	phase    float64
}

// NewOscillator creates an oscillator starting at phase 0.
func NewOscillator(sampleRate float64, waveform Waveform) (*Oscillator, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("signal: sample rate must be > 0 and finite: %f", sampleRate)
	}

	o := &Oscillator{sampleRate: sampleRate, waveform: waveform}

	switch waveform {
	case Sine:
		o.shape, o.maxPhase = math.Sin, 2*math.Pi
	case Saw:
		o.shape, o.maxPhase = sawShape, 2
	case Triangle:
		o.shape, o.maxPhase = triangleShape, 4
	default:
		return nil, fmt.Errorf("signal: invalid waveform: %d", waveform)
	}

	return o, nil
}

func sawShape(p float64) float64 {
	return 1 - p
}

func triangleShape(p float64) float64 {
	if p < 2 {
		return p - 1
	}
	return 3 - p
}

// Process generates frames samples at freq Hz.
func (o *Oscillator) Process(freq float64, frames int) ([]float64, error) {
	if freq < 0 || !core.IsFinite(freq) {
		return nil, fmt.Errorf("signal: frequency must be >= 0 and finite: %f", freq)
	}
	if frames < 0 {
		return nil, fmt.Errorf("signal: frames must be >= 0: %d", frames)
	}

	delta := o.maxPhase * freq / o.sampleRate
	phase := o.phase

	out := make([]float64, frames)
	for i := range out {
		out[i] = o.shape(phase)

		phase += delta
		if phase >= o.maxPhase {
			phase -= o.maxPhase
			if phase >= o.maxPhase {
				phase = math.Mod(phase, o.maxPhase)
			}
		}
	}

	o.phase = phase

	return out, nil
}

// Waveform returns the oscillator shape.
func (o *Oscillator) Waveform() Waveform { return o.waveform }

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// Phase returns the current phase in [0, max) of the waveform's range.
func (o *Oscillator) Phase() float64 { return o.phase }

// Reset returns the phase to 0.
func (o *Oscillator) Reset() { o.phase = 0 }
