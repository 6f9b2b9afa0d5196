package ugen

import (
	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/dsp/effects"
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
	"github.com/cwbudde/algo-ugen/dsp/filter/moog"
	"github.com/cwbudde/algo-ugen/dsp/filter/pass"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/dsp/smooth"
)

// unit adapts one kernel to the boundary types.
type unit interface {
	kind() string
	process(in Input, p Params) (Output, error)
	reset()
}

type echoUnit struct{ echo *delay.Echo }

func (*echoUnit) kind() string { return "echo" }
func (u *echoUnit) reset()     { u.echo.Reset() }

func (u *echoUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(EchoParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	block, ok := in.(Block)
	if !ok {
		return Output{}, unsupported(u.kind(), in)
	}

	samples, err := unpack(block)
	if err != nil {
		return Output{}, err
	}

	out, err := u.echo.Process(samples, params.Delay, params.Feedback, params.Damping)
	if err != nil {
		return Output{}, badArgument(err)
	}
	return blockOutput(out), nil
}

type rampUnit struct {
	ramp *smooth.Ramp
	// initial is nil when the level is seeded from the first target.
	initial *float64
}

func (*rampUnit) kind() string { return "ramp" }

func (u *rampUnit) reset() {
	if u.initial == nil {
		u.ramp.Rearm()
		return
	}
	u.ramp.Reset(*u.initial)
}

func (u *rampUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(RampParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	switch in := in.(type) {
	case Block:
		targets, err := unpack(in)
		if err != nil {
			return Output{}, err
		}
		out, err := u.ramp.Process(targets, params.Period)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return blockOutput(out), nil
	case Scalar:
		v, err := u.ramp.ProcessScalar(float64(in), params.Period)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return scalarOutput(v), nil
	default:
		return Output{}, unsupported(u.kind(), in)
	}
}

type lagUnit struct{ lag *smooth.Lag }

func (*lagUnit) kind() string { return "lag" }
func (u *lagUnit) reset()     { u.lag.Reset() }

func (u *lagUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(LagParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	switch in := in.(type) {
	case Block:
		samples, err := unpack(in)
		if err != nil {
			return Output{}, err
		}
		out, err := u.lag.Process(samples, params.LagTime)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return blockOutput(out), nil
	case Scalar:
		v, err := u.lag.ProcessScalar(float64(in), params.LagTime)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return scalarOutput(v), nil
	default:
		return Output{}, unsupported(u.kind(), in)
	}
}

type biquadUnit struct{ bq *biquad.Biquad }

func (*biquadUnit) kind() string { return "biquad" }
func (u *biquadUnit) reset()     { u.bq.Reset() }

func (u *biquadUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(BiquadParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	if err := params.Coefficients.Validate(); err != nil {
		return Output{}, badArgument(err)
	}

	switch in := in.(type) {
	case Block:
		samples, err := unpack(in)
		if err != nil {
			return Output{}, err
		}
		out, err := u.bq.Process(samples, params.Coefficients)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return blockOutput(out), nil
	case Scalar:
		return scalarOutput(u.bq.ProcessSample(float64(in), params.Coefficients)), nil
	default:
		return Output{}, unsupported(u.kind(), in)
	}
}

type passUnit struct{ filter *pass.Filter }

func (u *passUnit) kind() string { return u.filter.Mode().String() }
func (u *passUnit) reset()       { u.filter.Reset() }

func (u *passUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(PassParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	switch in := in.(type) {
	case Block:
		samples, err := unpack(in)
		if err != nil {
			return Output{}, err
		}
		out, err := u.filter.Process(samples, params.Cutoff)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return blockOutput(out), nil
	case Scalar:
		v, err := u.filter.ProcessScalar(float64(in), params.Cutoff)
		if err != nil {
			return Output{}, badArgument(err)
		}
		return scalarOutput(v), nil
	default:
		return Output{}, unsupported(u.kind(), in)
	}
}

type moogUnit struct{ ladder *moog.Ladder }

func (*moogUnit) kind() string { return "moog" }
func (u *moogUnit) reset()     { u.ladder.Reset() }

func (u *moogUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(MoogParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	block, ok := in.(Block)
	if !ok {
		return Output{}, unsupported(u.kind(), in)
	}

	samples, err := unpack(block)
	if err != nil {
		return Output{}, err
	}

	out, err := u.ladder.Process(samples, params.Cutoff, params.Resonance)
	if err != nil {
		return Output{}, badArgument(err)
	}
	return blockOutput(out), nil
}

type oscillatorUnit struct{ osc *signal.Oscillator }

func (u *oscillatorUnit) kind() string { return u.osc.Waveform().String() }
func (u *oscillatorUnit) reset()       { u.osc.Reset() }

func (u *oscillatorUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(OscillatorParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	frames, ok := in.(Frames)
	if !ok {
		return Output{}, unsupported(u.kind(), in)
	}

	out, err := u.osc.Process(params.Freq, int(frames))
	if err != nil {
		return Output{}, badArgument(err)
	}
	return blockOutput(out), nil
}

type noiseUnit struct{ noise *signal.Noise }

func (u *noiseUnit) kind() string { return u.noise.Color().String() + " noise" }
func (u *noiseUnit) reset()       { u.noise.Reset() }

func (u *noiseUnit) process(in Input, p Params) (Output, error) {
	if p != nil {
		if _, ok := p.(NoiseParams); !ok {
			return Output{}, wrongParams(u.kind(), p)
		}
	}

	frames, ok := in.(Frames)
	if !ok {
		return Output{}, unsupported(u.kind(), in)
	}

	out, err := u.noise.Process(int(frames))
	if err != nil {
		return Output{}, badArgument(err)
	}
	return blockOutput(out), nil
}

type bitCrusherUnit struct{ bc *effects.BitCrusher }

func (*bitCrusherUnit) kind() string { return "bitcrusher" }
func (u *bitCrusherUnit) reset()     { u.bc.Reset() }

func (u *bitCrusherUnit) process(in Input, p Params) (Output, error) {
	params, ok := p.(BitCrusherParams)
	if !ok {
		return Output{}, wrongParams(u.kind(), p)
	}

	block, ok := in.(Block)
	if !ok {
		return Output{}, unsupported(u.kind(), in)
	}

	samples, err := unpack(block)
	if err != nil {
		return Output{}, err
	}

	out, err := u.bc.Process(samples, params.Bits, params.NormalizedFrequency)
	if err != nil {
		return Output{}, badArgument(err)
	}
	return blockOutput(out), nil
}
