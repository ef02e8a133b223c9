// pkg/entity/player.go
package entity

import (
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// MovementTuning controls how quickly player velocity approaches the input.
type MovementTuning struct {
	Speed        float64
	Acceleration float64
	Deceleration float64
}

// Player is the input-controlled entity. Velocity is displacement per tick.
type Player struct {
	BaseEntity
	body
	Velocity physics.Vector2D
	Facing   physics.Vector2D
	Rotation float64
	Cadence  *Cadence
}

// NewPlayer creates a player at position with a fixed collider size
func NewPlayer(position, size physics.Vector2D, cadence CadenceConfig) (*Player, error) {
	if err := validateSize(KindPlayer, size); err != nil {
		return nil, err
	}
	return &Player{
		BaseEntity: newBaseEntity(position),
		body:       body{size: size},
		Facing:     physics.Vector2D{Y: 1},
		Cadence:    NewCadence(cadence),
	}, nil
}

// Kind returns KindPlayer
func (p *Player) Kind() Kind { return KindPlayer }

// GetVelocity returns the player's velocity
func (p *Player) GetVelocity() physics.Vector2D { return p.Velocity }

// GetCollider returns the player's collider at its current position
func (p *Player) GetCollider() physics.Rect { return p.colliderAt(p.Position) }

// Speed returns the magnitude of the velocity
func (p *Player) Speed() float64 { return p.Velocity.Length() }

// Steer eases velocity towards move*Speed*dt. With no input the player
// decelerates towards rest at the faster Deceleration rate.
func (p *Player) Steer(move physics.Vector2D, active bool, dt float64, tuning MovementTuning) {
	target := physics.Vector2D{}
	rate := tuning.Deceleration
	if active {
		target = move.Scale(tuning.Speed * dt)
		rate = tuning.Acceleration
	}
	p.Velocity = p.Velocity.Lerp(target, rate*dt)
	p.face(p.Velocity)
}

func (p *Player) face(v physics.Vector2D) {
	if v.IsZero() {
		return
	}
	p.Facing = v.Normalize()
	p.Rotation = v.Angle()
}
