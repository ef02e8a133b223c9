// pkg/level/level.go
package level

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Spawn describes one entity to create when a level is loaded
type Spawn struct {
	Kind     entity.Kind
	Position physics.Vector2D
	Size     physics.Vector2D
}

// Level is a loaded or generated arena. Bounds is the window area outside
// which projectiles expire.
type Level struct {
	Name   string
	Bounds physics.Rect
	Spawns []Spawn
}

// Level validation errors
var (
	ErrNoPlayer        = errors.New("level has no player spawn")
	ErrMultiplePlayers = errors.New("level has more than one player spawn")
	ErrInvalidSpawn    = errors.New("invalid spawn")
	ErrInvalidBounds   = errors.New("level bounds must be positive")
	ErrLevelNotFound   = errors.New("level not found")
	ErrMalformedGrid   = errors.New("malformed int grid layer")
)

// Count returns the number of spawns of the given kind
func (l *Level) Count(kind entity.Kind) int {
	n := 0
	for _, s := range l.Spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Player returns the player spawn
func (l *Level) Player() (Spawn, bool) {
	for _, s := range l.Spawns {
		if s.Kind == entity.KindPlayer {
			return s, true
		}
	}
	return Spawn{}, false
}

// Validate checks that the level can be loaded into a game
func (l *Level) Validate() error {
	if l.Bounds.Width <= 0 || l.Bounds.Height <= 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrInvalidBounds)
	}

	switch players := l.Count(entity.KindPlayer); {
	case players == 0:
		return fmt.Errorf("level %q: %w", l.Name, ErrNoPlayer)
	case players > 1:
		return fmt.Errorf("level %q has %d players: %w", l.Name, players, ErrMultiplePlayers)
	}

	for i, s := range l.Spawns {
		if s.Kind == entity.KindProjectile {
			return fmt.Errorf("level %q spawn %d: projectiles cannot be placed: %w", l.Name, i, ErrInvalidSpawn)
		}
		if s.Kind != entity.KindGoal && (s.Size.X <= 0 || s.Size.Y <= 0) {
			return fmt.Errorf("level %q spawn %d (%s) has size %v: %w", l.Name, i, s.Kind, s.Size, ErrInvalidSpawn)
		}
	}
	return nil
}
