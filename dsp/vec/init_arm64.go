//go:build arm64 && !purego

package vec

import (
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/generic"
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"
)
