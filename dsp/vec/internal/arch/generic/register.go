// Package generic provides the pure Go multiply kernel.
package generic

import (
	"github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		MulGroups: mulGroups,
	})
}

func mulGroups(dst, x, y []float64) {
	for i := range dst {
		dst[i] = x[i] * y[i]
	}
}
