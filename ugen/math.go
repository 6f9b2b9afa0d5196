package ugen

import (
	"github.com/cwbudde/algo-ugen/dsp/frame"
	"github.com/cwbudde/algo-ugen/dsp/vec"
)

// The functions below apply the vec operations to packed blocks. Length
// mismatches wrap vec.ErrLengthMismatch and ErrBadArgument.

// Scale multiplies every sample of a by k.
func Scale(a Block, k float64) ([]byte, error) {
	x, err := unpack(a)
	if err != nil {
		return nil, err
	}
	return frame.Pack(vec.Scale(x, k)), nil
}

// Multiply returns the elementwise product of a and b.
func Multiply(a, b Block) ([]byte, error) {
	return binaryOp(a, b, vec.Multiply)
}

// MultiplySIMD is Multiply through the CPU-dispatched kernel.
func MultiplySIMD(a, b Block) ([]byte, error) {
	return binaryOp(a, b, vec.MultiplySIMD)
}

// Subtract returns the elementwise difference a - b.
func Subtract(a, b Block) ([]byte, error) {
	return binaryOp(a, b, vec.Subtract)
}

// Add returns the elementwise sum of a and b. The tail of the longer block
// passes through unchanged.
func Add(a, b Block) ([]byte, error) {
	return binaryOp(a, b, func(x, y []float64) ([]float64, error) {
		return vec.Add(x, y), nil
	})
}

// Offset adds d to every sample of a.
func Offset(a Block, d float64) ([]byte, error) {
	x, err := unpack(a)
	if err != nil {
		return nil, err
	}
	return frame.Pack(vec.Offset(x, d)), nil
}

func binaryOp(a, b Block, op func(x, y []float64) ([]float64, error)) ([]byte, error) {
	x, err := unpack(a)
	if err != nil {
		return nil, err
	}

	y, err := unpack(b)
	if err != nil {
		return nil, err
	}

	out, err := op(x, y)
	if err != nil {
		return nil, badArgument(err)
	}

	return frame.Pack(out), nil
}
