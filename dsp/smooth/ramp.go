package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// RampOption mutates Ramp construction.
type RampOption func(*rampConfig) error

type rampConfig struct {
	level    float64
	hasLevel bool
}

// WithInitialLevel sets the level the ramp starts from. Without it the
// level is taken from the first target seen.
func WithInitialLevel(level float64) RampOption {
	return func(cfg *rampConfig) error {
		if !core.IsFinite(level) {
			return fmt.Errorf("smooth: initial level must be finite: %f", level)
		}
		cfg.level = level
		cfg.hasLevel = true
		return nil
	}
}

// Ramp is a linear segment generator. Whenever the current segment ends it
// starts a new one from the current level to the next target, lasting
// period seconds.
type Ramp struct {
	sampleRate float64
	periodSize int

	level   float64
	slope   float64
	counter int
	seeded  bool
}

// NewRamp creates a ramp. periodSize is the number of samples represented by
// one ProcessScalar call.
func NewRamp(sampleRate float64, periodSize int, opts ...RampOption) (*Ramp, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("smooth: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if periodSize <= 0 {
		return nil, fmt.Errorf("smooth: period size must be > 0: %d", periodSize)
	}

	cfg := rampConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Ramp{
		sampleRate: sampleRate,
		periodSize: periodSize,
		level:      cfg.level,
		counter:    1,
		seeded:     cfg.hasLevel,
	}, nil
}

// Process emits one level per target sample. targets[i] becomes the goal
// of a segment that starts at sample i; a segment ending at the block
// boundary takes the last target of the block.
func (r *Ramp) Process(targets []float64, period float64) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	out := make([]float64, len(targets))
	if len(targets) == 0 {
		return out, nil
	}

	if !r.seeded {
		r.level = targets[0]
		r.seeded = true
	}

	level, slope, counter := r.level, r.slope, r.counter
	last := len(targets) - 1

	for pos := 0; pos < len(targets); {
		n := min(len(targets)-pos, counter)
		for i := pos; i < pos+n; i++ {
			out[i] = level
			level += slope
		}
		pos += n
		counter -= n

		if counter <= 0 {
			counter = segmentLength(period * r.sampleRate)
			slope = (targets[min(pos, last)] - level) / float64(counter)
		}
	}

	r.level = core.Sanitize(level)
	r.slope = slope
	r.counter = counter

	return out, nil
}

// ProcessScalar advances the ramp by one control period towards target and
// returns the level at the start of that period. The segment length is
// period seconds counted in control periods.
func (r *Ramp) ProcessScalar(target, period float64) (float64, error) {
	if err := validatePeriod(period); err != nil {
		return 0, err
	}
	if !core.IsFinite(target) {
		return 0, fmt.Errorf("smooth: target must be finite: %f", target)
	}

	if !r.seeded {
		r.level = target
		r.seeded = true
	}

	y := r.level
	r.level = core.Sanitize(r.level + r.slope)
	r.counter--

	if r.counter <= 0 {
		r.counter = segmentLength(period * r.sampleRate / float64(r.periodSize))
		r.slope = (target - r.level) / float64(r.counter)
	}

	return y, nil
}

// Level returns the level the next sample starts from.
func (r *Ramp) Level() float64 { return r.level }

// Reset restarts the ramp at level with no segment in progress.
func (r *Ramp) Reset(level float64) {
	r.level = level
	r.slope = 0
	r.counter = 1
	r.seeded = true
}

// Rearm restarts the ramp with no segment in progress and takes the level
// from the next target, like a ramp built without WithInitialLevel.
func (r *Ramp) Rearm() {
	r.level = 0
	r.slope = 0
	r.counter = 1
	r.seeded = false
}

func segmentLength(samples float64) int {
	if samples >= math.MaxInt32 {
		return math.MaxInt32
	}
	return max(1, int(math.Round(samples)))
}

func validatePeriod(period float64) error {
	if period < 0 || !core.IsFinite(period) {
		return fmt.Errorf("smooth: period must be >= 0 and finite: %f", period)
	}
	return nil
}
