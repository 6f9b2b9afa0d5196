package ugen

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/frame"
)

// Input is the audio argument of a Process call: a Block, a Scalar or a
// Frames count.
type Input interface {
	isInput()
}

// Block is a packed float32 sample buffer.
type Block []byte

// Scalar is a single control-rate value.
type Scalar float64

// Frames is the number of samples a generator should produce.
type Frames int

func (Block) isInput()  {}
func (Scalar) isInput() {}
func (Frames) isInput() {}

// Output is the result of a Process call. Block is set for block input and
// generators; Value is set when IsScalar is true.
type Output struct {
	Block    []byte
	Value    float64
	IsScalar bool
}

func blockOutput(samples []float64) Output {
	return Output{Block: frame.Pack(samples)}
}

func scalarOutput(v float64) Output {
	return Output{Value: v, IsScalar: true}
}

func unpack(b Block) ([]float64, error) {
	samples, err := frame.Unpack(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadArgument, err)
	}
	return samples, nil
}

func badArgument(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrBadArgument, err)
}

func unsupported(kind string, in Input) error {
	return fmt.Errorf("%w: %s does not accept %T", ErrUnsupportedInput, kind, in)
}

func wrongParams(kind string, p Params) error {
	return fmt.Errorf("%w: %s expects its own params, got %T", ErrBadArgument, kind, p)
}
