package pass

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

const testRate = 48000.0

func mustNew(t *testing.T, mode Mode) *Filter {
	t.Helper()

	f, err := New(testRate, mode)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func process(t *testing.T, f *Filter, in []float64, cutoff float64) []float64 {
	t.Helper()

	out, err := f.Process(in, cutoff)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return out
}

// steadyAmplitude returns the amplitude of a sine from the RMS of its tail.
func steadyAmplitude(x []float64, tail int) float64 {
	var sum float64
	for _, v := range x[len(x)-tail:] {
		sum += v * v
	}
	return math.Sqrt(2 * sum / float64(tail))
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, LowPass); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := New(testRate, Mode(7)); err == nil {
		t.Fatal("expected error for invalid mode")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    Mode
		wantErr bool
	}{
		{name: "lowpass", want: LowPass},
		{name: "lpf", want: LowPass},
		{name: "highpass", want: HighPass},
		{name: "hpf", want: HighPass},
		{name: "bandpass", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseMode(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseMode(%q) = %v, %v", tt.name, got, err)
		}
		if got.String() != tt.name && len(tt.name) > 3 {
			t.Fatalf("String() = %q, want %q", got.String(), tt.name)
		}
	}
}

func TestLowPassPassesDCFromFirstSample(t *testing.T) {
	f := mustNew(t, LowPass)
	out := process(t, f, testutil.DC(0.5, 256), 200)
	testutil.RequireSliceNearlyEqual(t, out, testutil.DC(0.5, 256), 1e-9)
}

func TestHighPassBlocksDCFromFirstSample(t *testing.T) {
	f := mustNew(t, HighPass)
	out := process(t, f, testutil.DC(0.5, 256), 200)
	testutil.RequireSliceNearlyEqual(t, out, make([]float64, 256), 1e-9)
}

func TestCutoffIsMinus3dB(t *testing.T) {
	for _, mode := range []Mode{LowPass, HighPass} {
		t.Run(mode.String(), func(t *testing.T) {
			f := mustNew(t, mode)
			in := testutil.DeterministicSine(1000, testRate, 1, 48000)
			out := process(t, f, in, 1000)

			got := steadyAmplitude(out, 4800)
			if math.Abs(got-math.Sqrt2/2) > 0.005 {
				t.Fatalf("amplitude at cutoff = %v, want %v", got, math.Sqrt2/2)
			}
		})
	}
}

func TestStopband(t *testing.T) {
	tests := []struct {
		mode Mode
		freq float64
	}{
		{mode: LowPass, freq: 10000},
		{mode: HighPass, freq: 100},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			f := mustNew(t, tt.mode)
			in := testutil.DeterministicSine(tt.freq, testRate, 1, 48000)
			out := process(t, f, in, 1000)

			if got := steadyAmplitude(out, 4800); got > 0.02 {
				t.Fatalf("stopband amplitude = %v, want < 0.02", got)
			}
		})
	}
}

func TestCutoffChangeStartsFromPreviousCoefficients(t *testing.T) {
	in := testutil.DeterministicNoise(4, 1, 64)
	next := testutil.DeterministicNoise(5, 1, 3)

	glide := mustNew(t, LowPass)
	ref := mustNew(t, LowPass)
	process(t, glide, in, 500)
	process(t, ref, in, 500)

	// One group of three samples: it still runs on the old coefficients.
	got := process(t, glide, next, 5000)
	want := process(t, ref, next, 500)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	fresh := mustNew(t, LowPass)
	process(t, fresh, in, 5000)
	a0, b1, b2 := glide.Coefficients()
	wa0, wb1, wb2 := fresh.Coefficients()
	if a0 != wa0 || b1 != wb1 || b2 != wb2 {
		t.Fatalf("coefficients after glide = (%v, %v, %v), want (%v, %v, %v)", a0, b1, b2, wa0, wb1, wb2)
	}
}

func TestShortBlockSnapsCoefficients(t *testing.T) {
	in := testutil.DeterministicNoise(4, 1, 64)
	next := []float64{0.3, -0.2}

	a := mustNew(t, HighPass)
	b := mustNew(t, HighPass)
	process(t, a, in, 500)
	process(t, b, in, 500)

	// b switches to the new coefficients without gliding; both runs share state.
	b.coeffs = b.design(b.clampCutoff(3000))
	b.cutoff = 3000

	got := process(t, a, next, 3000)
	want := process(t, b, next, 3000)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestGlideIsSmootherThanJump(t *testing.T) {
	in := testutil.DC(1, 512)

	glide := mustNew(t, LowPass)
	process(t, glide, in, 100)
	gOut := process(t, glide, in, 8000)

	jump := mustNew(t, LowPass)
	process(t, jump, in, 100)
	jump.coeffs = jump.design(8000)
	jump.cutoff = 8000
	jOut := process(t, jump, in, 8000)

	maxStep := func(x []float64) float64 {
		prev, m := 1.0, 0.0
		for _, v := range x {
			m = max(m, math.Abs(v-prev))
			prev = v
		}
		return m
	}

	if maxStep(gOut) >= maxStep(jOut) {
		t.Fatalf("glide max step %v not below jump max step %v", maxStep(gOut), maxStep(jOut))
	}
}

func TestScalarMatchesBlockForConstantCutoff(t *testing.T) {
	in := testutil.DeterministicNoise(8, 1, 100)

	block := mustNew(t, LowPass)
	want := process(t, block, in, 2000)

	scalar := mustNew(t, LowPass)
	got := make([]float64, len(in))
	for i, x := range in {
		y, err := scalar.ProcessScalar(x, 2000)
		if err != nil {
			t.Fatal(err)
		}
		got[i] = y
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestCutoffClamping(t *testing.T) {
	f := mustNew(t, LowPass)

	process(t, f, []float64{0}, 1e9)
	if got := f.Cutoff(); math.Abs(got-0.4999*testRate) > 1e-9 {
		t.Fatalf("Cutoff = %v, want %v", got, 0.4999*testRate)
	}

	out := process(t, f, testutil.DeterministicNoise(1, 1, 64), -5)
	testutil.RequireFinite(t, out)
	if got := f.Cutoff(); got != minCutoffHz {
		t.Fatalf("Cutoff = %v, want %v", got, minCutoffHz)
	}

	if _, err := f.Process([]float64{1}, math.NaN()); err == nil {
		t.Fatal("expected error for NaN cutoff")
	}
	if _, err := f.ProcessScalar(1, math.Inf(1)); err == nil {
		t.Fatal("expected error for Inf cutoff")
	}
}

func TestStateSanitized(t *testing.T) {
	f := mustNew(t, LowPass)
	process(t, f, []float64{0}, 1000)

	f.y1, f.y2 = 1e-300, -1e-300
	process(t, f, make([]float64, 3), 1000)

	if f.y1 != 0 || f.y2 != 0 {
		t.Fatalf("state = (%v, %v), want zeros", f.y1, f.y2)
	}
}

func TestReset(t *testing.T) {
	f := mustNew(t, LowPass)
	process(t, f, testutil.DeterministicNoise(3, 1, 64), 300)

	f.Reset()
	if !math.IsNaN(f.Cutoff()) {
		t.Fatalf("Cutoff after Reset = %v, want NaN", f.Cutoff())
	}

	out := process(t, f, testutil.DC(-0.25, 32), 300)
	testutil.RequireSliceNearlyEqual(t, out, testutil.DC(-0.25, 32), 1e-9)
}

func BenchmarkProcessGlide(b *testing.B) {
	f, err := New(testRate, LowPass)
	if err != nil {
		b.Fatal(err)
	}
	in := testutil.DeterministicNoise(1, 1, 512)
	cutoff := 1000.0

	b.ReportAllocs()

	for b.Loop() {
		cutoff = 3000 - cutoff
		_, _ = f.Process(in, cutoff)
	}
}
