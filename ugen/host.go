package ugen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Handle identifies a unit owned by a Host. The zero Handle is never
// issued.
type Handle uint64

// Host owns the unit instances created through it.
type Host struct {
	defaults core.ProcessorConfig

	mu    sync.RWMutex
	next  Handle
	units map[Handle]unit
}

// NewHost returns an empty host. The options set the sample rate and
// period size used by configs that leave them zero.
func NewHost(opts ...core.ProcessorOption) *Host {
	return &Host{
		defaults: core.ApplyProcessorOptions(opts...),
		units:    make(map[Handle]unit),
	}
}

// Defaults returns the rate and period size applied to zero config fields.
func (h *Host) Defaults() core.ProcessorConfig {
	return h.defaults
}

// Construct builds a unit from cfg and returns its handle. A malformed
// config creates nothing.
func (h *Host) Construct(cfg Config) (Handle, error) {
	if cfg == nil {
		return 0, fmt.Errorf("%w: nil config", ErrBadArgument)
	}

	u, err := cfg.build(h.defaults)
	if err != nil {
		return 0, badArgument(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	h.units[h.next] = u

	return h.next, nil
}

// Process runs one call of the unit behind handle.
func (h *Host) Process(handle Handle, in Input, p Params) (Output, error) {
	u, err := h.lookup(handle)
	if err != nil {
		return Output{}, err
	}

	if in == nil {
		return Output{}, fmt.Errorf("%w: nil input", ErrBadArgument)
	}

	return u.process(in, p)
}

// Reset clears the signal memory of the unit behind handle. A ramp
// restarts from its configured initial level, or seeds again from the next
// target without one.
func (h *Host) Reset(handle Handle) error {
	u, err := h.lookup(handle)
	if err != nil {
		return err
	}

	u.reset()

	return nil
}

// Kind names the unit behind handle, e.g. "echo" or "pink noise".
func (h *Host) Kind(handle Handle) (string, error) {
	u, err := h.lookup(handle)
	if err != nil {
		return "", err
	}

	return u.kind(), nil
}

// Release drops the unit behind handle. The handle is not reused.
func (h *Host) Release(handle Handle) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.units[handle]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}

	delete(h.units, handle)

	return nil
}

// Len returns the number of live units.
func (h *Host) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.units)
}

// Handles returns the live handles in ascending order.
func (h *Host) Handles() []Handle {
	h.mu.RLock()
	handles := make([]Handle, 0, len(h.units))
	for handle := range h.units {
		handles = append(handles, handle)
	}
	h.mu.RUnlock()

	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	return handles
}

func (h *Host) lookup(handle Handle) (unit, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	u, ok := h.units[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}

	return u, nil
}
