package vec

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when an operation requires blocks of equal length.
var ErrLengthMismatch = errors.New("vec: block length mismatch")

// Scalar is any numeric type accepted as a scale factor.
type Scalar interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Scale returns x multiplied by k.
func Scale[T Scalar](x []float64, k T) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	vecmath.ScaleBlock(out, x, float64(k))
	return out
}

// Multiply returns the elementwise product of x and y.
func Multiply(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out, nil
	}
	vecmath.MulBlock(out, x, y)
	return out, nil
}

// Add returns the elementwise sum of x and y. When the lengths differ the
// common prefix is summed and the remaining samples of the longer block are
// copied through unchanged.
func Add(x, y []float64) []float64 {
	long, short := x, y
	if len(y) > len(x) {
		long, short = y, x
	}

	out := make([]float64, len(long))
	copy(out, long)
	if len(short) > 0 {
		vecmath.AddBlockInPlace(out[:len(short)], short)
	}
	return out
}

// Offset returns x with d added to every sample.
func Offset(x []float64, d float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = d + v
	}
	return out
}

// Subtract returns the elementwise difference x - y.
func Subtract(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out, nil
	}
	// x - y is evaluated as (-y) + x, which IEEE 754 defines identically.
	vecmath.ScaleBlock(out, y, -1)
	vecmath.AddBlockInPlace(out, x)
	return out, nil
}
