package ugen

import "errors"

var (
	// ErrUnknownHandle is returned for a handle that was never issued or
	// has been released.
	ErrUnknownHandle = errors.New("ugen: unknown handle")
	// ErrBadArgument is returned when a config, params value or input
	// block is malformed or out of range.
	ErrBadArgument = errors.New("ugen: bad argument")
	// ErrUnsupportedInput is returned when a unit does not accept the
	// given kind of input.
	ErrUnsupportedInput = errors.New("ugen: unsupported input")
)
