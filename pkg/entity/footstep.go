// pkg/entity/footstep.go
package entity

import (
	"math"

	"github.com/opd-ai/go-pursuit/pkg/event"
	"github.com/opd-ai/go-pursuit/pkg/physics"
	"github.com/opd-ai/go-pursuit/pkg/timer"
)

// CadenceConfig shapes the footstep rhythm.
type CadenceConfig struct {
	BaseInterval float64
	Constant     float64
	MinFactor    float64
	MinSpeed     float64
}

// Interval returns the footstep period at speed. Faster movement shortens
// it until MinFactor clamps it.
func (c CadenceConfig) Interval(speed float64) float64 {
	return c.BaseInterval * math.Max(c.MinFactor, c.Constant-speed)
}

// Cadence is a self-adjusting footstep timer. Its period is re-derived
// from the current speed on every step, before the timer is ticked.
type Cadence struct {
	config CadenceConfig
	timer  *timer.Repeating
	next   event.Foot
}

// NewCadence creates a cadence that steps with the left foot first
func NewCadence(config CadenceConfig) *Cadence {
	return &Cadence{
		config: config,
		timer:  timer.NewRepeating(config.Interval(0)),
		next:   event.FootLeft,
	}
}

// Interval returns the period used by the last Step
func (c *Cadence) Interval() float64 {
	return c.timer.Duration()
}

// NextFoot returns the foot that will land on the next footstep
func (c *Cadence) NextFoot() event.Foot {
	return c.next
}

// Step advances the cadence by dt at the given speed. It returns the foot
// that landed and true when a footstep happens this tick.
func (c *Cadence) Step(dt, speed float64) (event.Foot, bool) {
	c.timer.SetDuration(c.config.Interval(speed))
	if !c.timer.Tick(dt) || speed <= c.config.MinSpeed {
		return c.next, false
	}

	foot := c.next
	if foot == event.FootLeft {
		c.next = event.FootRight
	} else {
		c.next = event.FootLeft
	}
	return foot, true
}

// Footprint is a short-lived visual marker left by a footstep
type Footprint struct {
	Position physics.Vector2D
	Rotation float64
	Foot     event.Foot
	Age      float64
}

// NewFootprint places a footprint beside position, offset to the side of
// facing that matches foot.
func NewFootprint(position, facing physics.Vector2D, rotation float64, foot event.Foot, offset float64) Footprint {
	if facing.IsZero() {
		facing = physics.Vector2D{Y: 1}
	}
	side := facing.Normalize().Perp()
	if foot == event.FootRight {
		side = side.Scale(-1)
	}
	return Footprint{
		Position: position.Add(side.Scale(offset)),
		Rotation: rotation,
		Foot:     foot,
	}
}

// Expired reports whether the footprint has outlived maxAge
func (f Footprint) Expired(maxAge float64) bool {
	return f.Age > maxAge
}
