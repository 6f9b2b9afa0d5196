// Package vec provides the elementwise arithmetic used to combine sample
// blocks between unit generators.
//
// All operations return a freshly allocated block and never write to their
// inputs:
//
//   - Scale:        z[i] = x[i] * k, for any float or integer k
//   - Multiply:     z[i] = x[i] * y[i] (equal lengths)
//   - MultiplySIMD: as Multiply, in groups of 8 through a CPU-selected kernel
//   - Add:          z[i] = x[i] + y[i], longer tail passed through
//   - Offset:       z[i] = x[i] + d
//   - Subtract:     z[i] = x[i] - y[i] (equal lengths)
//
// Scale, Multiply, Add and Subtract run on algo-vecmath block kernels.
// MultiplySIMD selects its group kernel once, from the detected CPU
// features.
package vec
