package ugen

import (
	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/dsp/effects"
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
	"github.com/cwbudde/algo-ugen/dsp/filter/moog"
	"github.com/cwbudde/algo-ugen/dsp/filter/pass"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/dsp/smooth"
)

// Config describes a unit to construct. A zero SampleRate or PeriodSize in
// any config falls back to the host defaults.
type Config interface {
	build(defaults core.ProcessorConfig) (unit, error)
}

func rateOr(v float64, defaults core.ProcessorConfig) float64 {
	if v == 0 {
		return defaults.SampleRate
	}
	return v
}

func periodOr(v int, defaults core.ProcessorConfig) int {
	if v == 0 {
		return defaults.PeriodSize
	}
	return v
}

// EchoConfig constructs a damped feedback echo.
type EchoConfig struct {
	SampleRate float64
	PeriodSize int
	MaxDelay   float64 // seconds
}

func (c EchoConfig) build(d core.ProcessorConfig) (unit, error) {
	e, err := delay.NewEcho(rateOr(c.SampleRate, d), periodOr(c.PeriodSize, d), c.MaxDelay)
	if err != nil {
		return nil, err
	}
	return &echoUnit{echo: e}, nil
}

// RampConfig constructs a linear ramp smoother. A nil InitialLevel seeds
// the level from the first target.
type RampConfig struct {
	SampleRate   float64
	PeriodSize   int
	InitialLevel *float64
}

func (c RampConfig) build(d core.ProcessorConfig) (unit, error) {
	var (
		opts    []smooth.RampOption
		initial *float64
	)
	if c.InitialLevel != nil {
		level := *c.InitialLevel
		initial = &level
		opts = append(opts, smooth.WithInitialLevel(level))
	}

	r, err := smooth.NewRamp(rateOr(c.SampleRate, d), periodOr(c.PeriodSize, d), opts...)
	if err != nil {
		return nil, err
	}
	return &rampUnit{ramp: r, initial: initial}, nil
}

// LagConfig constructs an exponential lag smoother.
type LagConfig struct {
	SampleRate float64
	PeriodSize int
}

func (c LagConfig) build(d core.ProcessorConfig) (unit, error) {
	l, err := smooth.NewLag(rateOr(c.SampleRate, d), periodOr(c.PeriodSize, d))
	if err != nil {
		return nil, err
	}
	return &lagUnit{lag: l}, nil
}

// BiquadConfig constructs a direct-form I biquad. Coefficients arrive with
// every Process call.
type BiquadConfig struct{}

func (BiquadConfig) build(core.ProcessorConfig) (unit, error) {
	return &biquadUnit{bq: biquad.New()}, nil
}

// PassConfig constructs a second-order Butterworth low- or high-pass
// filter. Mode is a name accepted by pass.ParseMode.
type PassConfig struct {
	SampleRate float64
	Mode       string
}

func (c PassConfig) build(d core.ProcessorConfig) (unit, error) {
	mode, err := pass.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	f, err := pass.New(rateOr(c.SampleRate, d), mode)
	if err != nil {
		return nil, err
	}
	return &passUnit{filter: f}, nil
}

// MoogConfig constructs a resonant 4-pole ladder filter.
type MoogConfig struct{}

func (MoogConfig) build(core.ProcessorConfig) (unit, error) {
	return &moogUnit{ladder: moog.New()}, nil
}

// OscillatorConfig constructs a phase-accumulating oscillator. Waveform is
// a name accepted by signal.ParseWaveform.
type OscillatorConfig struct {
	SampleRate float64
	Waveform   string
}

func (c OscillatorConfig) build(d core.ProcessorConfig) (unit, error) {
	w, err := signal.ParseWaveform(c.Waveform)
	if err != nil {
		return nil, err
	}

	o, err := signal.NewOscillator(rateOr(c.SampleRate, d), w)
	if err != nil {
		return nil, err
	}
	return &oscillatorUnit{osc: o}, nil
}

// NoiseConfig constructs a noise generator. Color is a name accepted by
// signal.ParseColor. A nil Seed draws a time-based seed.
type NoiseConfig struct {
	Color string
	Seed  *int64
}

func (c NoiseConfig) build(core.ProcessorConfig) (unit, error) {
	color, err := signal.ParseColor(c.Color)
	if err != nil {
		return nil, err
	}

	var opts []signal.NoiseOption
	if c.Seed != nil {
		opts = append(opts, signal.WithSeed(*c.Seed))
	}

	n, err := signal.NewNoise(color, opts...)
	if err != nil {
		return nil, err
	}
	return &noiseUnit{noise: n}, nil
}

// BitCrusherConfig constructs a bit crusher. A nil Mix keeps the fully wet
// default.
type BitCrusherConfig struct {
	Mix *float64
}

func (c BitCrusherConfig) build(core.ProcessorConfig) (unit, error) {
	var opts []effects.BitCrusherOption
	if c.Mix != nil {
		opts = append(opts, effects.WithBitCrusherMix(*c.Mix))
	}

	bc, err := effects.NewBitCrusher(opts...)
	if err != nil {
		return nil, err
	}
	return &bitCrusherUnit{bc: bc}, nil
}
