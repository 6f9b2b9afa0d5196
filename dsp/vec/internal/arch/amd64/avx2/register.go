//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		MulGroups: mulGroups,
	})
}

// mulGroups runs whole groups through the AVX2 multiply of algo-vecmath.
func mulGroups(dst, x, y []float64) {
	vecmath.MulBlock(dst, x, y)
}
