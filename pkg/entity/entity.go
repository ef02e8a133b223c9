// pkg/entity/entity.go
package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Kind tags the fixed set of entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindWall
	KindProjectile
	KindGoal
)

var kindNames = map[Kind]string{
	KindPlayer:     "Player",
	KindEnemy:      "Enemy",
	KindWall:       "Wall",
	KindProjectile: "Projectile",
	KindGoal:       "Goal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("unknown entity kind")

// ParseKind maps a level identifier such as "Enemy" to its Kind.
func ParseKind(name string) (Kind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Construction errors. Sizes are fixed at spawn, so they are checked once here.
var (
	ErrInvalidSize      = errors.New("entity size must be positive and finite")
	ErrInvalidRadius    = errors.New("goal radius must be finite and not negative")
	ErrInvalidSpeed     = errors.New("projectile speed must be positive and finite")
	ErrInvalidOffset    = errors.New("phase offset must not be negative")
	ErrInvalidInterval  = errors.New("timer interval must be positive and finite")
	ErrZeroLengthAiming = errors.New("projectile target coincides with origin")
)

// Entity is implemented by every game object
type Entity interface {
	GetID() uint64
	Kind() Kind
	GetPosition() physics.Vector2D
}

// Mover is an entity with a velocity
type Mover interface {
	Entity
	GetVelocity() physics.Vector2D
}

// Collidable is an entity with an axis-aligned collider
type Collidable interface {
	Entity
	GetCollider() physics.Rect
}

// BaseEntity carries the ECS identity and position shared by all kinds
type BaseEntity struct {
	ecs.BasicEntity
	Position physics.Vector2D
}

func newBaseEntity(position physics.Vector2D) BaseEntity {
	return BaseEntity{
		BasicEntity: ecs.NewBasic(),
		Position:    position,
	}
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() uint64 {
	return e.BasicEntity.ID()
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// positiveFinite reports whether v is a usable size, speed or interval.
// NaN fails v > 0.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validateSize(kind Kind, size physics.Vector2D) error {
	if !positiveFinite(size.X) || !positiveFinite(size.Y) {
		return fmt.Errorf("new %s with size %v: %w", kind, size, ErrInvalidSize)
	}
	return nil
}

// body is the fixed-size dynamic collider shared by players, enemies and projectiles.
type body struct {
	size physics.Vector2D
}

// Size returns the collider's full extents.
func (b body) Size() physics.Vector2D {
	return b.size
}

// Half returns the collider's half extents.
func (b body) Half() physics.Vector2D {
	return b.size.Scale(0.5)
}

func (b body) colliderAt(position physics.Vector2D) physics.Rect {
	return physics.NewRect(position, b.size)
}
