//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "neon",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     15,
		ProcessBlock: processBlock,
	})
}

// processBlock keeps the whole state in registers and leaves the loop body
// free of bounds checks.
func processBlock(c registry.Coefficients, s registry.State, in, out []float64) registry.State {
	if len(in) == 0 {
		return s
	}

	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s.X1, s.X2, s.Y1, s.Y2

	out = out[:len(in)]
	for i, x := range in {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		out[i] = y
		x2, x1 = x1, x
		y2, y1 = y1, y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
