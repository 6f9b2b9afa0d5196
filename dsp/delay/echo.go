package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// echoGranularity pads the ring buffer capacity to a multiple of this many samples.
const echoGranularity = 8

// Echo is a feedback delay with a one-pole damping filter in the loop.
//
// Each output sample is in + feedback*lowpass(delayed), where delayed is a
// Hermite-interpolated read of the past output. The output is written back
// into the ring buffer, so the echoes repeat and decay.
type Echo struct {
	line *Line

	sampleRate float64
	periodSize int
	maxDelay   float64

	s1 float64
}

// NewEcho creates an echo for delays up to maxDelay seconds. periodSize is
// the number of silent samples processed when Process receives an empty block.
func NewEcho(sampleRate float64, periodSize int, maxDelay float64) (*Echo, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("delay: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if periodSize <= 0 {
		return nil, fmt.Errorf("delay: period size must be > 0: %d", periodSize)
	}
	if maxDelay < 0 || !core.IsFinite(maxDelay) {
		return nil, fmt.Errorf("delay: max delay must be >= 0 and finite: %f", maxDelay)
	}

	line, err := New(echoCapacity(sampleRate, maxDelay))
	if err != nil {
		return nil, err
	}

	return &Echo{
		line:       line,
		sampleRate: sampleRate,
		periodSize: periodSize,
		maxDelay:   maxDelay,
	}, nil
}

// echoCapacity rounds the maximum delay in samples up to the granularity and
// adds one extra block so the taps around the longest delay never reach the
// write head.
func echoCapacity(sampleRate, maxDelay float64) int {
	blocks := int(math.Ceil(sampleRate * maxDelay / echoGranularity))
	return (blocks + 1) * echoGranularity
}

// Process runs one block through the echo. delay is in seconds and clamped
// to [0, MaxDelay]. damping is the one-pole coefficient of the loop filter;
// 0 leaves the echoes unfiltered. An empty in advances the echo over one
// period of silence and returns that period's output.
func (e *Echo) Process(in []float64, delay, feedback, damping float64) ([]float64, error) {
	if !core.IsFinite(delay) {
		return nil, fmt.Errorf("delay: delay must be finite: %f", delay)
	}
	if !core.IsFinite(feedback) {
		return nil, fmt.Errorf("delay: feedback must be finite: %f", feedback)
	}
	if !core.IsFinite(damping) {
		return nil, fmt.Errorf("delay: damping must be finite: %f", damping)
	}

	n := len(in)
	if n == 0 {
		n = e.periodSize
	}
	out := make([]float64, n)

	delaySamples := e.sampleRate * core.Clamp(delay, 0, e.maxDelay)
	a := 1 - math.Abs(damping)
	s1 := e.s1

	for i := range out {
		var x float64
		if len(in) > 0 {
			x = in[i]
		}

		delayed := e.line.ReadFractional(delaySamples)
		lowpassed := a*delayed + damping*s1
		s1 = lowpassed

		y := core.Sanitize(x + feedback*lowpassed)
		out[i] = y
		e.line.Write(y)
	}

	e.s1 = core.Sanitize(s1)

	return out, nil
}

// Reset clears the ring buffer and the loop filter.
func (e *Echo) Reset() {
	e.line.Reset()
	e.s1 = 0
}

// SampleRate returns the sample rate in Hz.
func (e *Echo) SampleRate() float64 { return e.sampleRate }

// PeriodSize returns the length of the silent period used for empty blocks.
func (e *Echo) PeriodSize() int { return e.periodSize }

// MaxDelay returns the longest supported delay in seconds.
func (e *Echo) MaxDelay() float64 { return e.maxDelay }

// Capacity returns the ring buffer length in samples. It is the maximum
// delay rounded up to a multiple of 8 plus one guard block of 8, e.g.
// 48008 at 48 kHz with a 1 s maximum.
func (e *Echo) Capacity() int { return e.line.Len() }
