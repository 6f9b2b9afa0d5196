package biquad

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-ugen/dsp/core"
	archregistry "github.com/cwbudde/algo-ugen/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// ErrInvalidCoefficients is returned when A0 is zero or a coefficient is not finite.
var ErrInvalidCoefficients = errors.New("biquad: invalid coefficients")

// Coefficients holds the un-normalized transfer function
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (A0 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	A0, A1, A2 float64 // feedback (denominator)
	B0, B1, B2 float64 // feedforward (numerator)
}

// Validate reports whether c can be normalized.
func (c Coefficients) Validate() error {
	for _, v := range [...]float64{c.A0, c.A1, c.A2, c.B0, c.B1, c.B2} {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: non-finite value %f", ErrInvalidCoefficients, v)
		}
	}
	if c.A0 == 0 {
		return fmt.Errorf("%w: a0 must be non-zero", ErrInvalidCoefficients)
	}
	return nil
}

func (c Coefficients) normalized() archregistry.Coefficients {
	return archregistry.Coefficients{
		B0: c.B0 / c.A0,
		B1: c.B1 / c.A0,
		B2: c.B2 / c.A0,
		A1: c.A1 / c.A0,
		A2: c.A2 / c.A0,
	}
}

// Biquad is a direct form I second-order filter.
type Biquad struct {
	state archregistry.State
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockName     string
	processBlockInitOnce sync.Once
)

// New returns a Biquad with zero state.
func New() *Biquad {
	return &Biquad{}
}

// Process filters in with coefficients c and returns a new block of the same
// length. Invalid coefficients leave the state untouched.
func (b *Biquad) Process(in []float64, c Coefficients) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	out := make([]float64, len(in))
	if len(in) == 0 {
		return out, nil
	}

	s := processBlockImpl(c.normalized(), b.state, in, out)
	s.Y1 = core.Sanitize(s.Y1)
	s.Y2 = core.Sanitize(s.Y2)
	b.state = s

	return out, nil
}

// ProcessSample filters a single sample. c must be valid.
func (b *Biquad) ProcessSample(x float64, c Coefficients) float64 {
	n := c.normalized()
	s := &b.state

	y := n.B0*x + n.B1*s.X1 + n.B2*s.X2 - n.A1*s.Y1 - n.A2*s.Y2
	s.X2, s.X1 = s.X1, x
	s.Y2, s.Y1 = s.Y1, core.Sanitize(y)

	return y
}

// Reset clears the filter memory.
func (b *Biquad) Reset() {
	b.state = archregistry.State{}
}

// State returns the filter memory as [x1, x2, y1, y2].
func (b *Biquad) State() [4]float64 {
	return [4]float64{b.state.X1, b.state.X2, b.state.Y1, b.state.Y2}
}

// SetState restores memory previously returned by State.
func (b *Biquad) SetState(state [4]float64) {
	b.state = archregistry.State{X1: state[0], X2: state[1], Y1: state[2], Y2: state[3]}
}

// Implementation returns the name of the block kernel in use.
func Implementation() string {
	processBlockInitOnce.Do(initProcessBlockKernel)
	return processBlockName
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
	processBlockName = entry.Name
}
