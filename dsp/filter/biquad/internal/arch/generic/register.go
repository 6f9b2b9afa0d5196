package generic

import (
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, s registry.State, in, out []float64) registry.State {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s.X1, s.X2, s.Y1, s.Y2

	i := 0
	n := len(in)
	for ; i+1 < n; i += 2 {
		x0 := in[i]
		y0 := b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2

		xn := in[i+1]
		yn := b0*xn + b1*x0 + b2*x1 - a1*y0 - a2*y1

		out[i] = y0
		out[i+1] = yn
		x2, x1 = x0, xn
		y2, y1 = y0, yn
	}

	if i < n {
		x := in[i]
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		out[i] = y
		x2, x1 = x1, x
		y2, y1 = y1, y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
