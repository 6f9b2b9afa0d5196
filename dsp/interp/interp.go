package interp

// Hermite4 computes cubic 4-point interpolation at fractional position t
// between y1 and y2, using y0 and y3 as neighboring context.
//
// Hermite4(0, ...) returns y1 and Hermite4(1, ...) returns y2.
func Hermite4(t, y0, y1, y2, y3 float64) float64 {
	c0 := y1
	c1 := 0.5 * (y2 - y0)
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c3 := 0.5*(y3-y0) + 1.5*(y1-y2)
	return ((c3*t+c2)*t+c1)*t + c0
}
