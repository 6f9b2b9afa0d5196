// Package frame converts between sample blocks and the packed byte buffers
// exchanged with a host engine.
//
// A packed buffer is a sequence of little-endian IEEE 754 single-precision
// floats, four bytes per sample.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// SampleSize is the number of bytes per packed sample.
const SampleSize = 4

// ErrFrameSize is returned when a packed buffer length is not a multiple of SampleSize.
var ErrFrameSize = errors.New("frame: buffer length is not a multiple of the sample size")

// Pack converts samples to a packed float32 buffer.
func Pack(samples []float64) []byte {
	buf := make([]byte, len(samples)*SampleSize)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(buf[i*SampleSize:], math.Float32bits(float32(v)))
	}
	return buf
}

// PackScalar packs a single value.
func PackScalar(v float64) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, SampleSize), math.Float32bits(float32(v)))
}

// Unpack converts a packed float32 buffer to samples.
func Unpack(buf []byte) ([]float64, error) {
	if len(buf)%SampleSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameSize, len(buf))
	}

	samples := make([]float64, len(buf)/SampleSize)
	for i := range samples {
		samples[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*SampleSize:])))
	}
	return samples, nil
}

// Frames returns the number of samples in a packed buffer.
func Frames(buf []byte) (int, error) {
	if len(buf)%SampleSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes", ErrFrameSize, len(buf))
	}
	return len(buf) / SampleSize, nil
}
