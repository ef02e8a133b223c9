// pkg/engine/systems.go
package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/event"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// System priorities, highest first. They fix the order of one tick.
const (
	PriorityPlayer     = 60
	PriorityMovement   = 50
	PriorityEnemy      = 40
	PriorityProjectile = 30
	PriorityFootstep   = 20
	PriorityGoal       = 10
)

// Systems read the tick's dt from the game rather than the float32 the
// ecs world passes in.

// PlayerSystem eases the player's velocity towards the input and records
// it in the velocity history.
type PlayerSystem struct {
	game *Game
}

// Priority satisfies ecs.Prioritizer
func (s *PlayerSystem) Priority() int { return PriorityPlayer }

// Remove satisfies the ecs.System interface
func (s *PlayerSystem) Remove(basic ecs.BasicEntity) {
	st := s.game.state
	if st.player != nil && st.player.GetID() == basic.ID() {
		st.player = nil
	}
}

// Update satisfies the ecs.System interface
func (s *PlayerSystem) Update(float32) {
	g := s.game
	player, ok := g.state.Player()
	if !ok {
		return
	}

	tuning := entity.MovementTuning{
		Speed:        g.Config.Player.Speed,
		Acceleration: g.Config.Player.Acceleration,
		Deceleration: g.Config.Player.Deceleration,
	}
	player.Steer(g.input.Move, g.input.Active, g.dt, tuning)
	g.state.history.Set(player.Velocity)
}

// MovementSystem applies velocities to the player and enemies, stopping
// them flush against walls.
type MovementSystem struct {
	game *Game
}

// Priority satisfies ecs.Prioritizer
func (s *MovementSystem) Priority() int { return PriorityMovement }

// Remove satisfies the ecs.System interface
func (s *MovementSystem) Remove(ecs.BasicEntity) {}

// Update satisfies the ecs.System interface
func (s *MovementSystem) Update(float32) {
	st := s.game.state
	if player, ok := st.Player(); ok {
		player.Position = move(player.Position, player.Velocity, player.Half(), st.obstacles)
	}
	for _, enemy := range st.enemies {
		enemy.Position = move(enemy.Position, enemy.Velocity, enemy.Half(), st.obstacles)
	}
}

func move(position, velocity, half physics.Vector2D, obstacles physics.Obstacles) physics.Vector2D {
	if velocity.IsZero() {
		return position
	}
	return position.Add(physics.Resolve(velocity, position, half, obstacles))
}

// EnemySystem replays delayed player velocity onto each enemy and fires
// projectiles at a visible player when an enemy's shoot timer completes.
type EnemySystem struct {
	game *Game
}

// Priority satisfies ecs.Prioritizer
func (s *EnemySystem) Priority() int { return PriorityEnemy }

// Remove satisfies the ecs.System interface
func (s *EnemySystem) Remove(basic ecs.BasicEntity) {
	s.game.state.removeEnemy(basic.ID())
}

// Update satisfies the ecs.System interface
func (s *EnemySystem) Update(float32) {
	g := s.game
	st := g.state
	player, ok := st.Player()
	if !ok {
		return
	}

	sight := g.Config.Enemies
	for _, enemy := range st.enemies {
		enemy.Follow(st.history.Get(enemy.PhaseOffset))

		canSee := physics.CanSee(
			enemy.Position, player.Position,
			player.Half(), enemy.Half(),
			st.obstacles, sight.SightStep, sight.SightDistance,
		)
		if enemy.Think(g.dt, canSee) {
			s.shoot(enemy, player)
		}
	}
}

func (s *EnemySystem) shoot(enemy *entity.Enemy, target *entity.Player) {
	g := s.game
	size := physics.Vector2D{X: g.Config.Projectiles.Size, Y: g.Config.Projectiles.Size}

	projectile, err := entity.NewProjectile(enemy.GetID(), enemy.Position, target.Position, size, g.Config.Projectiles.Speed)
	if err != nil {
		g.logger.Debug(g.ctx, "enemy shot skipped", "enemy_id", enemy.GetID(), "error", err)
		return
	}

	g.state.projectiles = append(g.state.projectiles, projectile)
	g.EventBus.Publish(event.NewShootEvent(g, enemy.GetID(), projectile.GetID(), projectile.Position, projectile.Direction))
}

// ProjectileSystem moves projectiles and removes each one on its first
// terminal condition: leaving the bounds, hitting a wall or hitting the player.
type ProjectileSystem struct {
	game *Game
}

// Priority satisfies ecs.Prioritizer
func (s *ProjectileSystem) Priority() int { return PriorityProjectile }

// Remove satisfies the ecs.System interface
func (s *ProjectileSystem) Remove(basic ecs.BasicEntity) {
	s.game.state.removeProjectile(basic.ID())
}

// Update satisfies the ecs.System interface
func (s *ProjectileSystem) Update(float32) {
	g := s.game
	st := g.state

	var spent []*entity.Projectile
	for _, projectile := range st.projectiles {
		projectile.Advance(g.dt)

		outcome, done := s.outcome(projectile)
		if !done {
			continue
		}
		spent = append(spent, projectile)
		g.EventBus.Publish(event.NewProjectileEvent(outcome, g, projectile.GetID(), projectile.Position))
	}

	for _, projectile := range spent {
		g.removeEntity(projectile.BasicEntity)
	}
}

func (s *ProjectileSystem) outcome(projectile *entity.Projectile) (event.Type, bool) {
	st := s.game.state
	collider := projectile.GetCollider()

	if st.bounds.Outside(projectile.Position) {
		return event.ProjectileExpired, true
	}
	if st.blocked(collider) {
		return event.ProjectileHitObstacle, true
	}
	if player, ok := st.Player(); ok && collider.Overlaps(player.GetCollider()) {
		return event.ProjectileHitPlayer, true
	}
	return "", false
}

// FootstepSystem drives the player's footstep cadence, leaves footprints
// and ages old ones out.
type FootstepSystem struct {
	game *Game
}

// Priority satisfies ecs.Prioritizer
func (s *FootstepSystem) Priority() int { return PriorityFootstep }

// Remove satisfies the ecs.System interface
func (s *FootstepSystem) Remove(ecs.BasicEntity) {}

// Update satisfies the ecs.System interface
func (s *FootstepSystem) Update(float32) {
	g := s.game
	st := g.state
	cfg := g.Config.Footsteps

	kept := st.footprints[:0]
	for _, fp := range st.footprints {
		fp.Age += g.dt
		if !fp.Expired(cfg.FootprintMaxAge) {
			kept = append(kept, fp)
		}
	}
	st.footprints = kept

	player, ok := st.Player()
	if !ok {
		return
	}

	foot, stepped := player.Cadence.Step(g.dt, player.Speed())
	if !stepped {
		return
	}

	footprint := entity.NewFootprint(player.Position, player.Facing, player.Rotation, foot, cfg.FootprintOffset)
	st.footprints = append(st.footprints, footprint)
	g.EventBus.Publish(event.NewFootstepEvent(g, foot, footprint.Position))
}

// GoalSystem completes the level once the player reaches the goal
type GoalSystem struct {
	game *Game
}

// Priority satisfies ecs.Prioritizer
func (s *GoalSystem) Priority() int { return PriorityGoal }

// Remove satisfies the ecs.System interface
func (s *GoalSystem) Remove(ecs.BasicEntity) {}

// Update satisfies the ecs.System interface
func (s *GoalSystem) Update(float32) {
	g := s.game
	player, ok := g.state.Player()
	if !ok || g.state.goal == nil {
		return
	}

	reach := physics.Circle{Center: player.Position, Radius: player.Half().X}
	if g.state.goal.Proximity().Collides(reach) {
		g.completeLevel()
	}
}
