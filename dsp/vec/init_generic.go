//go:build purego || !(amd64 || arm64)

package vec

import (
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/generic"
	_ "github.com/cwbudde/algo-ugen/dsp/vec/internal/arch/registry"
)
