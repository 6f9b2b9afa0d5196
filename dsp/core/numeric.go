package core

import "math"

const (
	defaultEpsilon = 1e-12

	// SanitizeFloor is the magnitude at or below which Sanitize returns zero.
	SanitizeFloor = 1e-15
	// SanitizeCeiling is the magnitude at or above which Sanitize returns zero.
	SanitizeCeiling = 1e15
)

// Sanitize removes values that must never be carried in a feedback path.
//
// Denormals and exact zeros fail the lower bound, overflow and infinities
// fail the upper bound, and NaN fails both. Every such value becomes 0;
// anything else is returned unchanged.
func Sanitize(x float64) float64 {
	ax := math.Abs(x)
	if ax > SanitizeFloor && ax < SanitizeCeiling {
		return x
	}

	return 0
}

// SanitizeSlice applies Sanitize to every element of buf in place.
func SanitizeSlice(buf []float64) {
	for i, v := range buf {
		buf[i] = Sanitize(v)
	}
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
