//go:build amd64 && !purego

package vec

import (
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"   // initialize backend registry
)
