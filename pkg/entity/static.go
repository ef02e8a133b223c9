// pkg/entity/static.go
package entity

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Wall is an immovable obstacle of arbitrary size
type Wall struct {
	BaseEntity
	size physics.Vector2D
}

// NewWall creates a wall centered at position
func NewWall(position, size physics.Vector2D) (*Wall, error) {
	if err := validateSize(KindWall, size); err != nil {
		return nil, err
	}
	return &Wall{BaseEntity: newBaseEntity(position), size: size}, nil
}

// Kind returns KindWall
func (w *Wall) Kind() Kind { return KindWall }

// Size returns the wall's full extents
func (w *Wall) Size() physics.Vector2D { return w.size }

// GetCollider returns the wall's collider
func (w *Wall) GetCollider() physics.Rect { return physics.NewRect(w.Position, w.size) }

// Goal completes the level when the player comes within Radius of it.
// It has no collider.
type Goal struct {
	BaseEntity
	Radius float64
}

// NewGoal creates a goal marker
func NewGoal(position physics.Vector2D, radius float64) (*Goal, error) {
	if !(radius >= 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("new goal with radius %v: %w", radius, ErrInvalidRadius)
	}
	return &Goal{BaseEntity: newBaseEntity(position), Radius: radius}, nil
}

// Kind returns KindGoal
func (g *Goal) Kind() Kind { return KindGoal }

// Proximity returns the circle the player must enter
func (g *Goal) Proximity() physics.Circle {
	return physics.Circle{Center: g.Position, Radius: g.Radius}
}
