//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		MulGroups: mulGroups,
	})
}

// mulGroups runs whole groups through the NEON multiply of algo-vecmath.
func mulGroups(dst, x, y []float64) {
	vecmath.MulBlock(dst, x, y)
}
