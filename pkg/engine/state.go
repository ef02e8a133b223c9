// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/history"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// State is the entity registry for one loaded level. Slices keep spawn
// order so every tick visits entities deterministically.
type State struct {
	player      *entity.Player
	enemies     []*entity.Enemy
	walls       []*entity.Wall
	projectiles []*entity.Projectile
	goal        *entity.Goal
	footprints  []entity.Footprint

	obstacles *physics.QuadTree
	history   *history.VelocityHistory
	bounds    physics.Rect
}

// Player returns the player, if one is alive
func (s *State) Player() (*entity.Player, bool) {
	return s.player, s.player != nil
}

// Enemies returns the enemies in spawn order
func (s *State) Enemies() []*entity.Enemy {
	return s.enemies
}

// Projectiles returns the live projectiles in spawn order
func (s *State) Projectiles() []*entity.Projectile {
	return s.projectiles
}

// History returns the player velocity history
func (s *State) History() *history.VelocityHistory {
	return s.history
}

// blocked reports whether area overlaps any wall
func (s *State) blocked(area physics.Rect) bool {
	for _, o := range s.obstacles.Near(area) {
		if area.Overlaps(o) {
			return true
		}
	}
	return false
}

func (s *State) removeProjectile(id uint64) {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.GetID() != id {
			kept = append(kept, p)
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}

func (s *State) removeEnemy(id uint64) {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.GetID() != id {
			kept = append(kept, e)
		}
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept
}
