package smooth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestNewRampValidation(t *testing.T) {
	if _, err := NewRamp(0, 64); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := NewRamp(48000, 0); err == nil {
		t.Fatal("expected error for zero period size")
	}
	if _, err := NewRamp(48000, 64, WithInitialLevel(math.NaN())); err == nil {
		t.Fatal("expected error for NaN initial level")
	}
	if _, err := NewRamp(48000, 64, nil); err != nil {
		t.Fatalf("nil option: %v", err)
	}
}

func TestRampConvergesWithoutOvershoot(t *testing.T) {
	const (
		rate   = 1000.0
		period = 0.01 // 10 samples
		target = 1.0
	)

	r, err := NewRamp(rate, 64, WithInitialLevel(0))
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Process(testutil.DC(target, 40), period)
	if err != nil {
		t.Fatal(err)
	}

	steps := int(math.Ceil(period * rate))
	slope := target / float64(steps)

	for i, v := range out {
		if v > target+slope {
			t.Fatalf("index %d: %v overshoots %v", i, v, target)
		}
		if i > 0 && v < out[i-1]-1e-12 {
			t.Fatalf("index %d: %v decreased from %v", i, v, out[i-1])
		}
	}

	// The first sample emits the start level; the segment takes steps samples.
	for i := steps + 1; i < len(out); i++ {
		if math.Abs(out[i]-target) > 1e-9 {
			t.Fatalf("index %d: %v, want %v", i, out[i], target)
		}
	}
}

func TestRampLinearSegment(t *testing.T) {
	r, err := NewRamp(1000, 64, WithInitialLevel(0))
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Process(testutil.DC(4, 6), 0.004)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0, 1, 2, 3, 4}, 1e-12)
}

func TestRampSeedsFromFirstTarget(t *testing.T) {
	r, err := NewRamp(1000, 64)
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Process([]float64{0.5, 0.5, 0.5}, 0.002)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{0.5, 0.5, 0.5}, 0)
}

func TestRampContinuesAcrossBlocks(t *testing.T) {
	targets := testutil.Step(0, 1, 200, 50)

	whole, _ := NewRamp(1000, 64, WithInitialLevel(0))
	want, err := whole.Process(targets, 0.02)
	if err != nil {
		t.Fatal(err)
	}

	split, _ := NewRamp(1000, 64, WithInitialLevel(0))
	var got []float64
	for _, block := range testutil.Blocks(targets, 64) {
		out, err := split.Process(block, 0.02)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, out...)
	}

	// Segments end at 1, 21, 41, ... so none of them ends on a block boundary.
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestRampZeroPeriodJumps(t *testing.T) {
	r, err := NewRamp(48000, 64, WithInitialLevel(0))
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Process([]float64{3, 3, 3, 3}, 0)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0, 3, 3}, 0)
}

func TestRampProcessScalar(t *testing.T) {
	// 4 periods of 16 samples.
	r, err := NewRamp(1600, 16, WithInitialLevel(0))
	if err != nil {
		t.Fatal(err)
	}

	var got []float64
	for range 7 {
		y, err := r.ProcessScalar(8, 0.04)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, y)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 2, 4, 6, 8, 8}, 1e-12)
}

func TestRampRejectsInvalidPeriod(t *testing.T) {
	r, err := NewRamp(48000, 64, WithInitialLevel(0.25))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := r.Process([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative period")
	}
	if _, err := r.ProcessScalar(1, math.NaN()); err == nil {
		t.Fatal("expected error for NaN period")
	}
	if _, err := r.ProcessScalar(math.Inf(1), 0.1); err == nil {
		t.Fatal("expected error for Inf target")
	}
	if r.Level() != 0.25 {
		t.Fatalf("Level changed to %v", r.Level())
	}
}

func TestRampReset(t *testing.T) {
	r, err := NewRamp(1000, 64, WithInitialLevel(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Process(testutil.DC(1, 5), 0.01); err != nil {
		t.Fatal(err)
	}

	r.Reset(-1)
	out, err := r.Process([]float64{-1, -1}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{-1, -1}, 0)
}

func TestRampRearmSeedsFromNextTarget(t *testing.T) {
	r, err := NewRamp(1000, 64)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Process(testutil.DC(1, 5), 0.01); err != nil {
		t.Fatal(err)
	}

	r.Rearm()
	out, err := r.Process(testutil.DC(0.5, 3), 0.01)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out, testutil.DC(0.5, 3), 0)
	if r.Level() != 0.5 {
		t.Fatalf("Level = %v, want 0.5", r.Level())
	}
}
