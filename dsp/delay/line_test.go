package delay

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size=0")
	}

	if _, err := New(-1); err == nil {
		t.Fatal("expected error for size=-1")
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 16 {
		t.Fatalf("Len: got %d want 16", d.Len())
	}

	if d.WritePos() != 0 {
		t.Fatalf("WritePos: got %d want 0", d.WritePos())
	}
}

// --- integer Read/Write ---

func TestReadWrite(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		d.Write(float64(i + 1))
	}

	// Most recent is 8, written one sample ago.
	for k := 1; k <= 8; k++ {
		want := float64(9 - k)
		if got := d.Read(k); got != want {
			t.Fatalf("Read(%d): got %v want %v", k, got, want)
		}
	}
}

func TestReadWraparound(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 6; i++ {
		d.Write(float64(i))
	}

	tests := []struct {
		delay int
		want  float64
	}{
		{delay: 1, want: 5},
		{delay: 2, want: 4},
		{delay: 4, want: 2},
		{delay: 0, want: 2},
		{delay: 5, want: 5},
		{delay: -1, want: 3},
		{delay: 13, want: 5},
	}

	for _, tt := range tests {
		if got := d.Read(tt.delay); got != tt.want {
			t.Fatalf("Read(%d): got %v want %v", tt.delay, got, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Write(1)
	d.Write(2)
	d.Reset()

	if d.WritePos() != 0 {
		t.Fatalf("WritePos after Reset: %d", d.WritePos())
	}

	for k := 0; k < 4; k++ {
		if d.Read(k) != 0 {
			t.Fatalf("Read(%d) after Reset: %v", k, d.Read(k))
		}
	}
}

// --- fractional reads ---

func fillRamp(d *Line) {
	for i := 0; i < d.Len(); i++ {
		d.Write(float64(i))
	}
}

func TestReadFractionalIntegerPositions(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	fillRamp(d)

	for p := 1; p <= 10; p++ {
		if got, want := d.ReadFractional(float64(p)), d.Read(p); got != want {
			t.Fatalf("ReadFractional(%d): got %v want %v", p, got, want)
		}
	}
}

func TestReadFractionalLinearRamp(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	fillRamp(d)

	// Value written k samples ago is 16-k; Hermite reproduces a ramp exactly.
	for _, delay := range []float64{2.25, 3.5, 7.75, 10.1} {
		want := 16 - delay
		if got := d.ReadFractional(delay); !approxEqual(got, want, 1e-12) {
			t.Fatalf("ReadFractional(%v): got %v want %v", delay, got, want)
		}
	}
}

func TestReadFractionalClamped(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	fillRamp(d)

	if got, want := d.ReadFractional(-3), d.ReadFractional(0); got != want {
		t.Fatalf("negative delay: got %v want %v", got, want)
	}

	if got, want := d.ReadFractional(100), d.ReadFractional(5); got != want {
		t.Fatalf("oversized delay: got %v want %v", got, want)
	}

	if got, want := d.ReadFractional(math.NaN()), d.ReadFractional(0); got != want {
		t.Fatalf("NaN delay: got %v want %v", got, want)
	}
}

func BenchmarkReadFractional(b *testing.B) {
	d, err := New(1024)
	if err != nil {
		b.Fatal(err)
	}
	fillRamp(d)

	b.ReportAllocs()

	for b.Loop() {
		_ = d.ReadFractional(123.45)
	}
}
