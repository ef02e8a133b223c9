// Package history records recent player velocities so followers can replay
// them with a delay.
package history

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// ErrInvalidCapacity is returned when a buffer is created with no slots.
var ErrInvalidCapacity = errors.New("history capacity must be positive")

// VelocityHistory is a fixed-size ring of velocity samples. It starts
// filled with zero velocity, so reads before the first lap are zero.
type VelocityHistory struct {
	samples []physics.Vector2D
	pointer int
}

// New creates a ring with size slots.
func New(size int) (*VelocityHistory, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new velocity history of size %d: %w", size, ErrInvalidCapacity)
	}
	return &VelocityHistory{
		samples: make([]physics.Vector2D, size),
	}, nil
}

// Len returns the fixed capacity.
func (h *VelocityHistory) Len() int {
	return len(h.samples)
}

// Set writes v at the write pointer and advances it.
func (h *VelocityHistory) Set(v physics.Vector2D) {
	h.samples[h.pointer] = v
	h.pointer = (h.pointer + 1) % len(h.samples)
}

// Get returns the sample written offset+1 Set calls ago. Get(0) is the
// latest write. Offsets wrap modulo the capacity.
//
// An enemy following offset 0 trails the player by one tick only because
// the enemy system reads after the player system has written the same tick.
func (h *VelocityHistory) Get(offset int) physics.Vector2D {
	n := len(h.samples)
	idx := ((h.pointer-1-offset)%n + n) % n
	return h.samples[idx]
}
