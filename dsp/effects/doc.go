// Package effects provides signal degradation effects.
package effects
