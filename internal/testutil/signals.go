package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Step generates a signal that is from before pos and to from pos onwards.
func Step(from, to float64, length, pos int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < pos {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out
}

// Blocks splits signal into consecutive blocks of size n. The last block
// may be shorter.
func Blocks(signal []float64, n int) [][]float64 {
	if n <= 0 {
		return nil
	}
	var blocks [][]float64
	for start := 0; start < len(signal); start += n {
		end := min(start+n, len(signal))
		blocks = append(blocks, signal[start:end])
	}
	return blocks
}
