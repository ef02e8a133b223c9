// pkg/entity/enemy.go
package entity

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-pursuit/pkg/physics"
	"github.com/opd-ai/go-pursuit/pkg/timer"
)

// Enemy trails the player by replaying delayed player velocity and fires
// when its repeating shoot timer completes while it can see the player.
type Enemy struct {
	BaseEntity
	body
	Velocity     physics.Vector2D
	Facing       physics.Vector2D
	PhaseOffset  int
	ShootTimer   *timer.Repeating
	CanSeePlayer bool
}

// NewEnemy creates an enemy whose shoot timer starts initialPhase seconds
// into its cycle. phaseOffset selects the velocity history sample it follows.
func NewEnemy(position, size physics.Vector2D, phaseOffset int, shootInterval, initialPhase float64) (*Enemy, error) {
	if err := validateSize(KindEnemy, size); err != nil {
		return nil, err
	}
	if phaseOffset < 0 {
		return nil, fmt.Errorf("new enemy with offset %d: %w", phaseOffset, ErrInvalidOffset)
	}
	if !positiveFinite(shootInterval) {
		return nil, fmt.Errorf("new enemy with shoot interval %v: %w", shootInterval, ErrInvalidInterval)
	}
	if math.IsNaN(initialPhase) || math.IsInf(initialPhase, 0) {
		return nil, fmt.Errorf("new enemy with initial phase %v: %w", initialPhase, ErrInvalidInterval)
	}

	shootTimer := timer.NewRepeating(shootInterval)
	shootTimer.SetElapsed(initialPhase)

	return &Enemy{
		BaseEntity:  newBaseEntity(position),
		body:        body{size: size},
		Facing:      physics.Vector2D{Y: 1},
		PhaseOffset: phaseOffset,
		ShootTimer:  shootTimer,
	}, nil
}

// Kind returns KindEnemy
func (e *Enemy) Kind() Kind { return KindEnemy }

// GetVelocity returns the enemy's velocity
func (e *Enemy) GetVelocity() physics.Vector2D { return e.Velocity }

// GetCollider returns the enemy's collider at its current position
func (e *Enemy) GetCollider() physics.Rect { return e.colliderAt(e.Position) }

// Follow adopts a sampled player velocity. Facing keeps its previous value
// when the sample is zero.
func (e *Enemy) Follow(sample physics.Vector2D) {
	e.Velocity = sample
	if !sample.IsZero() {
		e.Facing = sample.Normalize()
	}
}

// Think records visibility, ticks the shoot timer and reports whether the
// enemy fires this tick.
func (e *Enemy) Think(dt float64, canSeePlayer bool) bool {
	e.CanSeePlayer = canSeePlayer
	finished := e.ShootTimer.Tick(dt)
	return finished && canSeePlayer
}
