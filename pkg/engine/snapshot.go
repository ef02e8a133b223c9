// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Snapshot is a read-only copy of the game state for renderers
type Snapshot struct {
	Tick        uint64
	Status      Status
	Level       string
	Bounds      physics.Rect
	Player      *PlayerState
	Enemies     []EnemyState
	Walls       []WallState
	Projectiles []ProjectileState
	Footprints  []entity.Footprint
	Goal        *GoalState
}

// PlayerState represents a snapshot of the player
type PlayerState struct {
	ID       uint64
	Position physics.Vector2D
	Velocity physics.Vector2D
	Facing   physics.Vector2D
	Rotation float64
	Size     physics.Vector2D
}

// EnemyState represents a snapshot of an enemy
type EnemyState struct {
	ID           uint64
	Position     physics.Vector2D
	Velocity     physics.Vector2D
	Facing       physics.Vector2D
	Size         physics.Vector2D
	CanSeePlayer bool
}

// WallState represents a snapshot of a wall
type WallState struct {
	ID       uint64
	Position physics.Vector2D
	Size     physics.Vector2D
}

// ProjectileState represents a snapshot of a projectile
type ProjectileState struct {
	ID        uint64
	Position  physics.Vector2D
	Direction physics.Vector2D
	Size      physics.Vector2D
}

// GoalState represents a snapshot of the goal
type GoalState struct {
	ID       uint64
	Position physics.Vector2D
	Radius   float64
}

// Snapshot returns a copy of the current game state
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := g.state
	snap := Snapshot{
		Tick:        g.tick,
		Status:      g.status,
		Level:       g.levelName,
		Bounds:      st.bounds,
		Enemies:     make([]EnemyState, 0, len(st.enemies)),
		Walls:       make([]WallState, 0, len(st.walls)),
		Projectiles: make([]ProjectileState, 0, len(st.projectiles)),
		Footprints:  append([]entity.Footprint(nil), st.footprints...),
	}

	if p, ok := st.Player(); ok {
		snap.Player = &PlayerState{
			ID:       p.GetID(),
			Position: p.Position,
			Velocity: p.Velocity,
			Facing:   p.Facing,
			Rotation: p.Rotation,
			Size:     p.Size(),
		}
	}
	for _, e := range st.enemies {
		snap.Enemies = append(snap.Enemies, EnemyState{
			ID:           e.GetID(),
			Position:     e.Position,
			Velocity:     e.Velocity,
			Facing:       e.Facing,
			Size:         e.Size(),
			CanSeePlayer: e.CanSeePlayer,
		})
	}
	for _, w := range st.walls {
		snap.Walls = append(snap.Walls, WallState{ID: w.GetID(), Position: w.Position, Size: w.Size()})
	}
	for _, p := range st.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileState{
			ID:        p.GetID(),
			Position:  p.Position,
			Direction: p.Direction,
			Size:      p.Size(),
		})
	}
	if st.goal != nil {
		snap.Goal = &GoalState{ID: st.goal.GetID(), Position: st.goal.Position, Radius: st.goal.Radius}
	}

	return snap
}
