package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const defaultLength = 4096

// Errors returned by Measure and ImpulseResponse.
var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
	ErrInvalidLength     = errors.New("response: length must be positive")
	ErrBlockLength       = errors.New("response: processor changed the block length")
)

// Kernel processes one block and returns an output block of the same length.
type Kernel func(in []float64) ([]float64, error)

// Option configures a measurement.
type Option func(*config) error

type config struct {
	length  int
	preroll int
}

// WithLength sets the number of impulse response samples captured. The
// FFT size is the next power of two. Default 4096.
func WithLength(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidLength, n)
		}
		cfg.length = n
		return nil
	}
}

// WithPreroll runs n samples of silence through the kernel before the
// impulse. The preroll output is discarded.
func WithPreroll(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("response: preroll must be >= 0: %d", n)
		}
		cfg.preroll = n
		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := config{length: defaultLength}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// ImpulseResponse feeds a unit impulse through k and returns the output.
func ImpulseResponse(k Kernel, opts ...Option) ([]float64, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return impulseResponse(k, cfg)
}

func impulseResponse(k Kernel, cfg config) ([]float64, error) {
	if cfg.preroll > 0 {
		if _, err := run(k, make([]float64, cfg.preroll)); err != nil {
			return nil, err
		}
	}

	impulse := make([]float64, cfg.length)
	impulse[0] = 1

	return run(k, impulse)
}

func run(k Kernel, in []float64) ([]float64, error) {
	out, err := k(in)
	if err != nil {
		return nil, fmt.Errorf("response: kernel failed: %w", err)
	}
	if len(out) != len(in) {
		return nil, fmt.Errorf("%w: %d != %d", ErrBlockLength, len(out), len(in))
	}
	return out, nil
}

// Response is a measured frequency response. Magnitude and Phase hold
// bins 0 to FFTSize/2.
type Response struct {
	SampleRate float64
	FFTSize    int
	Impulse    []float64
	Magnitude  []float64
	Phase      []float64
}

// Measure captures the impulse response of k and its spectrum.
func Measure(k Kernel, sampleRate float64, opts ...Option) (*Response, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	ir, err := impulseResponse(k, cfg)
	if err != nil {
		return nil, err
	}

	fftSize := nextPowerOf2(max(cfg.length, 2))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range ir {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	phase := make([]float64, bins)
	for i := range bins {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
		phase[i] = math.Atan2(im[i], re[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Response{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Impulse:    ir,
		Magnitude:  mag,
		Phase:      phase,
	}, nil
}

// BinWidth returns the frequency spacing of the bins in Hz.
func (r *Response) BinWidth() float64 {
	return r.SampleRate / float64(r.FFTSize)
}

// Freq returns the center frequency of bin in Hz.
func (r *Response) Freq(bin int) float64 {
	return float64(bin) * r.BinWidth()
}

// MagnitudeDB returns the magnitude of every bin in dB.
func (r *Response) MagnitudeDB() []float64 {
	out := make([]float64, len(r.Magnitude))
	for i, m := range r.Magnitude {
		out[i] = core.LinearToDB(m)
	}
	return out
}

// At returns the magnitude in dB of the bin nearest to freq.
func (r *Response) At(freq float64) float64 {
	bin := int(math.Round(freq / r.BinWidth()))
	bin = min(max(bin, 0), len(r.Magnitude)-1)
	return core.LinearToDB(r.Magnitude[bin])
}

// Peak returns the largest magnitude in dB. It is -Inf for a silent
// response.
func (r *Response) Peak() float64 {
	peak := math.Inf(-1)
	for _, m := range r.Magnitude {
		peak = math.Max(peak, core.LinearToDB(m))
	}
	return peak
}

// Crossing returns the first frequency at which the magnitude crosses
// levelDB, interpolated linearly between bins. ok is false when it never
// does or when levelDB is not finite.
func (r *Response) Crossing(levelDB float64) (freq float64, ok bool) {
	if !core.IsFinite(levelDB) {
		return 0, false
	}

	db := r.MagnitudeDB()
	for i := 1; i < len(db); i++ {
		prev, cur := db[i-1]-levelDB, db[i]-levelDB
		if prev == 0 {
			return r.Freq(i - 1), true
		}
		if (prev > 0) == (cur > 0) && cur != 0 {
			continue
		}

		// A silent bin has no slope to interpolate along.
		switch {
		case math.IsInf(prev, 0):
			return r.Freq(i), true
		case math.IsInf(cur, 0):
			return r.Freq(i - 1), true
		}

		t := prev / (prev - cur)
		return r.Freq(i-1) + t*r.BinWidth(), true
	}
	return 0, false
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
