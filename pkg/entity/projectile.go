// pkg/entity/projectile.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Projectile travels in a straight line at constant speed until removed.
// Direction and Speed never change after spawn.
type Projectile struct {
	BaseEntity
	body
	Direction physics.Vector2D
	Speed     float64
	OwnerID   uint64
	Age       float64
}

// NewProjectile aims a projectile from origin at target. A target equal to
// the origin has no direction and is rejected.
func NewProjectile(ownerID uint64, origin, target, size physics.Vector2D, speed float64) (*Projectile, error) {
	if err := validateSize(KindProjectile, size); err != nil {
		return nil, err
	}
	if !positiveFinite(speed) {
		return nil, fmt.Errorf("new projectile with speed %v: %w", speed, ErrInvalidSpeed)
	}
	aim := target.Sub(origin)
	if aim.IsZero() {
		return nil, ErrZeroLengthAiming
	}

	return &Projectile{
		BaseEntity: newBaseEntity(origin),
		body:       body{size: size},
		Direction:  aim.Normalize(),
		Speed:      speed,
		OwnerID:    ownerID,
	}, nil
}

// Kind returns KindProjectile
func (p *Projectile) Kind() Kind { return KindProjectile }

// GetVelocity returns the per-second velocity
func (p *Projectile) GetVelocity() physics.Vector2D { return p.Direction.Scale(p.Speed) }

// GetCollider returns the projectile's collider at its current position
func (p *Projectile) GetCollider() physics.Rect { return p.colliderAt(p.Position) }

// Advance moves the projectile along its direction for dt seconds
func (p *Projectile) Advance(dt float64) {
	p.Position = p.Position.Add(p.Direction.Scale(p.Speed * dt))
	p.Age += dt
}
