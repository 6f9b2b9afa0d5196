package signal

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Color selects the noise spectrum.
type Color int

const (
	// White noise is uniform in [-1, 1].
	White Color = iota
	// Pink noise falls at about 3 dB per octave.
	Pink
	// Brown noise falls at about 6 dB per octave.
	Brown
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	default:
		return "unknown"
	}
}

// ParseColor returns the noise color with the given name.
func ParseColor(name string) (Color, error) {
	switch name {
	case "white":
		return White, nil
	case "pink":
		return Pink, nil
	case "brown", "red":
		return Brown, nil
	default:
		return 0, fmt.Errorf("signal: unknown noise color %q", name)
	}
}

// NoiseOption configures a Noise generator.
type NoiseOption func(*noiseConfig) error

type noiseConfig struct {
	seed    int64
	hasSeed bool
}

// WithSeed makes the generator deterministic. Without it the seed is taken
// from the clock.
func WithSeed(seed int64) NoiseOption {
	return func(cfg *noiseConfig) error {
		cfg.seed = seed
		cfg.hasSeed = true
		return nil
	}
}

// Noise generates white, pink or brown noise.
//
// Pink noise sums seven leaky integrators of the white source (Paul
// Kellet's refined method). Brown noise is a single leaky integrator.
type Noise struct {
	color Color
	rng   *rand.Rand
	b     [7]float64
}

// NewNoise creates a noise generator.
func NewNoise(color Color, opts ...NoiseOption) (*Noise, error) {
	switch color {
	case White, Pink, Brown:
	default:
		return nil, fmt.Errorf("signal: invalid noise color: %d", color)
	}

	cfg := noiseConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if !cfg.hasSeed {
		cfg.seed = time.Now().UnixNano()
	}

	return &Noise{
		color: color,
		rng:   rand.New(rand.NewSource(cfg.seed)),
	}, nil
}

// Process generates frames samples.
func (n *Noise) Process(frames int) ([]float64, error) {
	if frames < 0 {
		return nil, fmt.Errorf("signal: frames must be >= 0: %d", frames)
	}

	out := make([]float64, frames)
	b := n.b

	for i := range out {
		white := n.rng.Float64()*2 - 1

		switch n.color {
		case White:
			out[i] = white
		case Pink:
			b[0] = 0.99886*b[0] + white*0.0555179
			b[1] = 0.99332*b[1] + white*0.0750759
			b[2] = 0.96900*b[2] + white*0.1538520
			b[3] = 0.86650*b[3] + white*0.3104856
			b[4] = 0.55000*b[4] + white*0.5329522
			b[5] = -0.7616*b[5] - white*0.0168980
			pink := b[0] + b[1] + b[2] + b[3] + b[4] + b[5] + b[6] + white*0.5362
			b[6] = white * 0.115926
			out[i] = pink * 0.11
		case Brown:
			b[0] = (b[0] + 0.02*white) / 1.02
			out[i] = b[0] * 3.5
		}
	}

	core.SanitizeSlice(b[:])
	n.b = b

	return out, nil
}

// Color returns the noise color.
func (n *Noise) Color() Color { return n.color }

// Reset clears the integrator state. The random sequence continues.
func (n *Noise) Reset() {
	n.b = [7]float64{}
}
