package vec

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestScale(t *testing.T) {
	x := []float64{1, -2, 0.5, 0}

	testutil.RequireSliceNearlyEqual(t, Scale(x, 2), []float64{2, -4, 1, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, Scale(x, 0.5), []float64{0.5, -1, 0.25, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, Scale(x, int8(-1)), []float64{-1, 2, -0.5, 0}, 0)

	if got := Scale(nil, 3); len(got) != 0 {
		t.Fatalf("Scale(nil) len = %d, want 0", len(got))
	}
}

func TestScaleDoesNotAlias(t *testing.T) {
	x := []float64{1, 2, 3}
	out := Scale(x, 2)
	testutil.RequireNotAliased(t, x, out)

	if x[0] != 1 || x[1] != 2 || x[2] != 3 {
		t.Fatalf("input modified: %v", x)
	}
}

func TestMultiply(t *testing.T) {
	got, err := Multiply([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 10, 18}, 0)

	if _, err := Multiply([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Multiply mismatch err = %v, want ErrLengthMismatch", err)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want []float64
	}{
		{name: "equal", x: []float64{1, 2}, y: []float64{3, 4}, want: []float64{4, 6}},
		{name: "x longer", x: []float64{1, 2, 3, 4}, y: []float64{10, 20}, want: []float64{11, 22, 3, 4}},
		{name: "y longer", x: []float64{1}, y: []float64{10, 20, 30}, want: []float64{11, 20, 30}},
		{name: "empty", x: nil, y: nil, want: []float64{}},
		{name: "one empty", x: nil, y: []float64{5, 6}, want: []float64{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireSliceNearlyEqual(t, Add(tt.x, tt.y), tt.want, 0)
		})
	}
}

func TestOffset(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Offset([]float64{1, -1, 0}, 0.5), []float64{1.5, -0.5, 0.5}, 0)
}

func TestSubtract(t *testing.T) {
	got, err := Subtract([]float64{5, 1, 0.25}, []float64{2, 3, 0.25})
	if err != nil {
		t.Fatalf("Subtract: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, -2, 0}, 0)

	if _, err := Subtract([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Subtract mismatch err = %v, want ErrLengthMismatch", err)
	}
}

func TestMultiplySIMDMatchesMultiply(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16, 23, 64, 100} {
		x := testutil.DeterministicNoise(3, 1, n)
		y := testutil.DeterministicSine(440, 48000, 1, n)

		want, err := Multiply(x, y)
		if err != nil {
			t.Fatalf("n=%d Multiply: %v", n, err)
		}
		got, err := MultiplySIMD(x, y)
		if err != nil {
			t.Fatalf("n=%d MultiplySIMD: %v", n, err)
		}

		if len(got) != n {
			t.Fatalf("n=%d len = %d", n, len(got))
		}
		for i := range got {
			if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
				t.Fatalf("n=%d index %d: got %v want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestMultiplySIMDLongBlocks(t *testing.T) {
	for _, n := range []int{1024, 4096, 4099} {
		x := testutil.DeterministicNoise(5, 2, n)
		y := testutil.DeterministicNoise(6, 0.5, n)

		want, err := Multiply(x, y)
		if err != nil {
			t.Fatal(err)
		}
		got, err := MultiplySIMD(x, y)
		if err != nil {
			t.Fatal(err)
		}

		diff, err := testutil.MaxAbsDiff(got, want)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if diff != 0 {
			t.Fatalf("n=%d (%s): max abs diff %g, want 0", n, Implementation(), diff)
		}
	}
}

func TestMultiplySIMDLengthMismatch(t *testing.T) {
	if _, err := MultiplySIMD(make([]float64, 8), make([]float64, 9)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestImplementationNotEmpty(t *testing.T) {
	if Implementation() == "" {
		t.Fatal("Implementation returned empty name")
	}
}

func BenchmarkMultiplySIMD(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	y := testutil.DeterministicNoise(2, 1, 4096)

	b.ReportAllocs()
	b.SetBytes(int64(len(x) * 8))

	for b.Loop() {
		_, _ = MultiplySIMD(x, y)
	}
}

func BenchmarkMultiply(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	y := testutil.DeterministicNoise(2, 1, 4096)

	b.ReportAllocs()
	b.SetBytes(int64(len(x) * 8))

	for b.Loop() {
		_, _ = Multiply(x, y)
	}
}
