// Package interp provides the fractional-sample interpolation used by the
// delay-based unit generators.
//
// [Hermite4] is a 4-point, 3rd-order Hermite interpolator (x-form). It is
// exact at the two inner points and only needs the immediate neighbors,
// which makes it cheap enough to evaluate once per output sample.
package interp
