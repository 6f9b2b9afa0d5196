package pass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const (
	minCutoffHz = 0.01
	// maxCutoffRatio limits the cutoff just below Nyquist.
	maxCutoffRatio = 0.4999

	// interpolationGroup is the number of samples processed between
	// coefficient updates while the cutoff glides.
	interpolationGroup = 3
)

// Mode selects the filter response.
type Mode int

const (
	// LowPass passes frequencies below the cutoff.
	LowPass Mode = iota
	// HighPass passes frequencies above the cutoff.
	HighPass
)

func (m Mode) String() string {
	switch m {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode with the given name ("lowpass" or "highpass").
func ParseMode(name string) (Mode, error) {
	switch name {
	case "lowpass", "lpf":
		return LowPass, nil
	case "highpass", "hpf":
		return HighPass, nil
	default:
		return 0, fmt.Errorf("pass: unknown mode %q", name)
	}
}

type coefficients struct {
	a0, b1, b2 float64
}

// Filter is a 2-pole, 2-zero low-pass or high-pass filter.
//
// The recursion runs on the feedback part only,
//
//	w[n] = x[n] + b1*w[n-1] + b2*w[n-2]
//
// and the output applies the zeros: a0*(w[n] + 2w[n-1] + w[n-2]) for
// low-pass, a0*(w[n] - 2w[n-1] + w[n-2]) for high-pass.
type Filter struct {
	sampleRate float64
	mode       Mode
	sign       float64

	cutoff float64 // NaN until the first call
	coeffs coefficients
	y1, y2 float64
	first  bool
}

// New creates a filter for the given mode.
func New(sampleRate float64, mode Mode) (*Filter, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("pass: sample rate must be > 0 and finite: %f", sampleRate)
	}

	sign := 1.0
	switch mode {
	case LowPass:
	case HighPass:
		sign = -1
	default:
		return nil, fmt.Errorf("pass: invalid mode: %d", mode)
	}

	return &Filter{
		sampleRate: sampleRate,
		mode:       mode,
		sign:       sign,
		cutoff:     math.NaN(),
		first:      true,
	}, nil
}

// Mode returns the filter mode.
func (f *Filter) Mode() Mode { return f.mode }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Cutoff returns the cutoff of the last call after clamping, or NaN before
// the first call.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// Coefficients returns the current a0, b1 and b2.
func (f *Filter) Coefficients() (a0, b1, b2 float64) {
	return f.coeffs.a0, f.coeffs.b1, f.coeffs.b2
}

// Process filters a block. cutoff is in Hz and clamped to
// [0.01, 0.4999*sampleRate].
func (f *Filter) Process(in []float64, cutoff float64) ([]float64, error) {
	if !core.IsFinite(cutoff) {
		return nil, fmt.Errorf("pass: cutoff must be finite: %f", cutoff)
	}

	out := make([]float64, len(in))
	if len(in) == 0 {
		return out, nil
	}

	cutoff = f.clampCutoff(cutoff)
	if f.first {
		f.cutoff = cutoff
		f.coeffs = f.design(cutoff)
		f.seed(in[0])
	}

	y1, y2 := f.y1, f.y2

	if cutoff == f.cutoff {
		y1, y2 = f.run(f.coeffs, in, out, y1, y2)
	} else {
		next := f.design(cutoff)
		loops := len(in) / interpolationGroup
		n := loops * interpolationGroup

		if loops > 0 {
			c := f.coeffs
			k := 1 / float64(loops)
			da0 := (next.a0 - c.a0) * k
			db1 := (next.b1 - c.b1) * k
			db2 := (next.b2 - c.b2) * k

			for i := 0; i < n; i += interpolationGroup {
				y1, y2 = f.run(c, in[i:i+interpolationGroup], out[i:i+interpolationGroup], y1, y2)
				c.a0 += da0
				c.b1 += db1
				c.b2 += db2
			}
		}

		y1, y2 = f.run(next, in[n:], out[n:], y1, y2)
		f.coeffs = next
		f.cutoff = cutoff
	}

	f.y1 = core.Sanitize(y1)
	f.y2 = core.Sanitize(y2)

	return out, nil
}

// ProcessScalar filters one control value. A changed cutoff takes effect
// immediately.
func (f *Filter) ProcessScalar(x, cutoff float64) (float64, error) {
	if !core.IsFinite(cutoff) {
		return 0, fmt.Errorf("pass: cutoff must be finite: %f", cutoff)
	}

	cutoff = f.clampCutoff(cutoff)
	if f.first || cutoff != f.cutoff {
		f.cutoff = cutoff
		f.coeffs = f.design(cutoff)
	}
	if f.first {
		f.seed(x)
	}

	var y [1]float64
	y1, y2 := f.run(f.coeffs, []float64{x}, y[:], f.y1, f.y2)
	f.y1 = core.Sanitize(y1)
	f.y2 = core.Sanitize(y2)

	return y[0], nil
}

// Reset clears the filter memory; the next call seeds it again.
func (f *Filter) Reset() {
	f.cutoff = math.NaN()
	f.coeffs = coefficients{}
	f.y1, f.y2 = 0, 0
	f.first = true
}

func (f *Filter) run(c coefficients, in, out []float64, y1, y2 float64) (float64, float64) {
	zero := 2 * f.sign
	for i, x := range in {
		y0 := x + c.b1*y1 + c.b2*y2
		out[i] = c.a0 * (y0 + zero*y1 + y2)
		y2 = y1
		y1 = y0
	}
	return y1, y2
}

// seed sets the memory to the steady state of a constant input x.
func (f *Filter) seed(x float64) {
	f.first = false

	den := 1 - f.coeffs.b1 - f.coeffs.b2
	if math.Abs(den) < core.SanitizeFloor {
		f.y1, f.y2 = 0, 0
		return
	}

	w := core.Sanitize(x / den)
	f.y1, f.y2 = w, w
}

func (f *Filter) clampCutoff(cutoff float64) float64 {
	return core.Clamp(cutoff, minCutoffHz, maxCutoffRatio*f.sampleRate)
}

func (f *Filter) design(cutoff float64) coefficients {
	w := math.Pi * cutoff / f.sampleRate

	var c float64
	if f.mode == HighPass {
		c = math.Tan(w)
	} else {
		c = 1 / math.Tan(w)
	}

	c2 := c * c
	sqrt2C := c * math.Sqrt2
	a0 := 1 / (1 + sqrt2C + c2)

	return coefficients{
		a0: a0,
		b1: -f.sign * 2 * (1 - c2) * a0,
		b2: -(1 - sqrt2C + c2) * a0,
	}
}
