package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// log001 is ln(0.001), the -60 dB decay the lag time refers to.
var log001 = math.Log(0.001)

// Lag is a one-pole exponential smoother:
//
//	y[n] = x[n] + b1*(y[n-1] - x[n])
//
// with b1 = exp(periodSize*ln(0.001)/(lagTime*sampleRate)). A lag time of 0
// passes the input through. When the lag time changes between block calls,
// b1 glides linearly to its new value across the block.
type Lag struct {
	sampleRate float64
	periodSize int

	lagTime float64 // NaN until the first call
	b1      float64
	y1      float64
	first   bool
}

// NewLag creates a smoother.
func NewLag(sampleRate float64, periodSize int) (*Lag, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("smooth: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if periodSize <= 0 {
		return nil, fmt.Errorf("smooth: period size must be > 0: %d", periodSize)
	}

	return &Lag{
		sampleRate: sampleRate,
		periodSize: periodSize,
		lagTime:    math.NaN(),
		first:      true,
	}, nil
}

// Process smooths a block. The first non-empty block seeds the filter
// memory from its first sample.
func (l *Lag) Process(in []float64, lagTime float64) ([]float64, error) {
	if err := validateLagTime(lagTime); err != nil {
		return nil, err
	}

	out := make([]float64, len(in))
	if len(in) == 0 {
		return out, nil
	}

	if l.first {
		l.y1 = in[0]
		l.first = false
	}

	y1, b1 := l.y1, l.b1

	if lagTime == l.lagTime {
		for i, x := range in {
			y1 = x + b1*(y1-x)
			out[i] = y1
		}
	} else {
		l.b1 = l.coefficient(lagTime)
		l.lagTime = lagTime
		slope := (l.b1 - b1) / float64(len(in))
		for i, x := range in {
			b1 += slope
			y1 = x + b1*(y1-x)
			out[i] = y1
		}
	}

	l.y1 = core.Sanitize(y1)

	return out, nil
}

// ProcessScalar smooths one control value. A changed lag time takes effect
// immediately.
func (l *Lag) ProcessScalar(x, lagTime float64) (float64, error) {
	if err := validateLagTime(lagTime); err != nil {
		return 0, err
	}

	if l.first {
		l.y1 = x
		l.first = false
	}

	if lagTime != l.lagTime {
		l.b1 = l.coefficient(lagTime)
		l.lagTime = lagTime
	}

	y := x + l.b1*(l.y1-x)
	l.y1 = core.Sanitize(y)

	return y, nil
}

// Coefficient returns the current feedback coefficient b1.
func (l *Lag) Coefficient() float64 { return l.b1 }

// Reset forgets the filter memory; the next call seeds it again.
func (l *Lag) Reset() {
	l.lagTime = math.NaN()
	l.b1 = 0
	l.y1 = 0
	l.first = true
}

func (l *Lag) coefficient(lagTime float64) float64 {
	if lagTime == 0 {
		return 0
	}
	return math.Exp(float64(l.periodSize) * log001 / (lagTime * l.sampleRate))
}

func validateLagTime(lagTime float64) error {
	if lagTime < 0 || !core.IsFinite(lagTime) {
		return fmt.Errorf("smooth: lag time must be >= 0 and finite: %f", lagTime)
	}
	return nil
}
