// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/event"
	"github.com/opd-ai/go-pursuit/pkg/history"
	"github.com/opd-ai/go-pursuit/pkg/level"
	"github.com/opd-ai/go-pursuit/pkg/logging"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Status is the lifecycle state of a game
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusLevelComplete
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusLevelComplete:
		return "level_complete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// obstacleCapacity is the number of walls a quadtree leaf holds before splitting.
const obstacleCapacity = 8

// ErrNotLoaded is returned by operations that need a loaded level.
var ErrNotLoaded = errors.New("no level loaded")

// Input is the movement intent for one tick
type Input struct {
	Move   physics.Vector2D
	Active bool
}

// Game owns the entity registry and runs the tick pipeline. A single
// goroutine drives Tick; the mutex lets renderers take snapshots from others.
// Event handlers run inside Tick and must not call back into the Game.
type Game struct {
	Config   *config.GameConfig
	EventBus *event.Bus

	mu        sync.RWMutex
	ctx       context.Context
	logger    *logging.Logger
	rng       *rand.Rand
	world     *ecs.World
	state     *State
	status    Status
	level     *level.Level
	levelName string
	tick      uint64

	// Per-tick inputs read by the systems.
	dt    float64
	input Input
}

// NewGame creates an idle game. Call Load to populate it.
func NewGame(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Game{
		Config:   cfg,
		EventBus: event.NewEventBus(),
		ctx:      ctx,
		logger:   logger,
		rng:      rand.New(rand.NewPCG(cfg.World.Seed, cfg.World.Seed^0x5851f42d4c957f2d)),
		state:    &State{},
	}, nil
}

// Load replaces the current level. Spawns are validated before any state
// changes, so a failed load leaves the previous level running.
func (g *Game) Load(lvl *level.Level) error {
	if err := lvl.Validate(); err != nil {
		return logging.WrapError(err, "failed to load level %q", lvl.Name)
	}

	state, err := g.buildState(lvl)
	if err != nil {
		return logging.WrapError(err, "failed to load level %q", lvl.Name)
	}

	g.mu.Lock()
	g.state = state
	g.world = g.newWorld()
	g.status = StatusPlaying
	g.level = lvl
	g.levelName = lvl.Name
	g.tick = 0
	g.mu.Unlock()

	g.logger.Info(g.ctx, "level loaded",
		"level", lvl.Name,
		"enemies", len(state.enemies),
		"walls", len(state.walls),
	)
	g.EventBus.Publish(event.NewLevelEvent(event.LevelLoaded, g, lvl.Name, 0))
	return nil
}

// Restart loads the current level again from its spawns. Enemy phases are
// drawn afresh.
func (g *Game) Restart() error {
	g.mu.RLock()
	lvl := g.level
	g.mu.RUnlock()

	if lvl == nil {
		return ErrNotLoaded
	}
	return g.Load(lvl)
}

func (g *Game) buildState(lvl *level.Level) (*State, error) {
	cfg := g.Config
	hist, err := history.New(cfg.Player.HistorySize)
	if err != nil {
		return nil, err
	}

	state := &State{
		history: hist,
		bounds:  lvl.Bounds,
	}

	cadence := entity.CadenceConfig{
		BaseInterval: cfg.Footsteps.BaseInterval,
		Constant:     cfg.Footsteps.Constant,
		MinFactor:    cfg.Footsteps.MinFactor,
		MinSpeed:     cfg.Footsteps.MinSpeed,
	}

	var obstacles []physics.Rect
	for i, spawn := range lvl.Spawns {
		switch spawn.Kind {
		case entity.KindPlayer:
			state.player, err = entity.NewPlayer(spawn.Position, spawn.Size, cadence)
		case entity.KindEnemy:
			var enemy *entity.Enemy
			enemy, err = entity.NewEnemy(
				spawn.Position,
				spawn.Size,
				g.rng.IntN(cfg.Player.HistorySize),
				cfg.Enemies.ShootInterval,
				g.rng.Float64()*cfg.Enemies.ShootInterval,
			)
			if err == nil {
				state.enemies = append(state.enemies, enemy)
			}
		case entity.KindWall:
			var wall *entity.Wall
			wall, err = entity.NewWall(spawn.Position, spawn.Size)
			if err == nil {
				state.walls = append(state.walls, wall)
				obstacles = append(obstacles, wall.GetCollider())
			}
		case entity.KindGoal:
			state.goal, err = entity.NewGoal(spawn.Position, cfg.World.GoalRadius)
		}
		if err != nil {
			return nil, fmt.Errorf("spawn %d (%s): %w", i, spawn.Kind, err)
		}
	}

	state.obstacles = physics.BuildQuadTree(obstacles, obstacleCapacity)
	return state, nil
}

// newWorld wires the tick pipeline. Priorities are distinct so the ecs
// world's sort yields a fixed order, highest first.
func (g *Game) newWorld() *ecs.World {
	world := &ecs.World{}
	world.AddSystem(&PlayerSystem{game: g})
	world.AddSystem(&MovementSystem{game: g})
	world.AddSystem(&EnemySystem{game: g})
	world.AddSystem(&ProjectileSystem{game: g})
	world.AddSystem(&FootstepSystem{game: g})
	world.AddSystem(&GoalSystem{game: g})
	return world
}

// Tick advances the simulation by dt seconds. It is a no-op unless a level
// is being played.
func (g *Game) Tick(dt float64, input Input) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusPlaying {
		return
	}
	if dt < 0 {
		dt = 0
	}

	g.dt = dt
	g.input = input
	g.world.Update(float32(dt))
	g.tick++
}

// Status returns the current lifecycle state
func (g *Game) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// CurrentTick returns the number of ticks simulated since the level loaded
func (g *Game) CurrentTick() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tick
}

// removeEntity drops an entity from every system
func (g *Game) removeEntity(basic ecs.BasicEntity) {
	g.world.RemoveEntity(basic)
}

func (g *Game) completeLevel() {
	g.status = StatusLevelComplete
	g.logger.Info(g.ctx, "level complete", "level", g.levelName, "tick", g.tick)
	g.EventBus.Publish(event.NewLevelEvent(event.LevelCompleted, g, g.levelName, g.tick))
}
