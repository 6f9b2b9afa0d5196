package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/interp"
)

// Line is a circular delay line with a fixed capacity.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay: size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// WritePos returns the index the next Write stores to.
func (d *Line) WritePos() int {
	return d.writePos
}

// Write stores one sample at the write head and advances it.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample written delay samples ago. Read(1) is the most
// recent sample; Read(0) is the oldest one, about to be overwritten.
// Any integer is accepted and wrapped into the buffer.
func (d *Line) Read(delay int) float64 {
	return d.buffer[wrap(d.writePos-delay, len(d.buffer))]
}

// ReadFractional reads a delay in samples with cubic Hermite interpolation
// between Read(p) and Read(p+1), using Read(p-1) and Read(p+2) as context.
// delay is clamped into [0, Len()-3].
func (d *Line) ReadFractional(delay float64) float64 {
	if !(delay > 0) {
		delay = 0
	}
	maxDelay := float64(len(d.buffer) - 3)
	if delay > maxDelay {
		delay = max(maxDelay, 0)
	}

	p := int(math.Floor(delay))
	t := delay - float64(p)

	return interp.Hermite4(t, d.Read(p-1), d.Read(p), d.Read(p+1), d.Read(p+2))
}

// Reset clears line state.
func (d *Line) Reset() {
	clear(d.buffer)
	d.writePos = 0
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
