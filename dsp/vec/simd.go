package vec

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// GroupSize is the number of samples each accelerated multiply step handles.
const GroupSize = registry.GroupSize

var (
	mulGroupsImpl registry.MulGroupsFn
	mulGroupsName string
	mulInitOnce   sync.Once
)

// MultiplySIMD returns the elementwise product of x and y. Whole groups of
// GroupSize samples go through the kernel selected for the running CPU; the
// tail is multiplied one sample at a time. For finite inputs the result is
// bit-identical to Multiply.
func MultiplySIMD(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	mulInitOnce.Do(initMulGroupsKernel)

	out := make([]float64, len(x))
	n := len(x) - len(x)%GroupSize
	if n > 0 {
		mulGroupsImpl(out[:n], x[:n], y[:n])
	}
	for i := n; i < len(x); i++ {
		out[i] = x[i] * y[i]
	}
	return out, nil
}

// Implementation returns the name of the kernel used by MultiplySIMD.
func Implementation() string {
	mulInitOnce.Do(initMulGroupsKernel)
	return mulGroupsName
}

func initMulGroupsKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vec: no multiply kernel registered (missing generic fallback?)")
	}

	if entry.MulGroups == nil {
		panic("vec: selected kernel missing MulGroups")
	}

	mulGroupsImpl = entry.MulGroups
	mulGroupsName = entry.Name
}
