// Package ugen is the boundary between a host engine and the unit
// generators.
//
// A [Host] owns a table of unit instances addressed by opaque [Handle]s.
// Construct builds an instance from a typed config, Process runs one call
// with an [Input] (packed block, scalar or frame count) and typed params,
// and Release drops the instance. Audio crosses the boundary as packed
// little-endian float32 buffers (see package frame).
//
// The table is safe for concurrent use. Calls for one handle must not
// overlap; calls for different handles may run in parallel.
package ugen
