// pkg/engine/helpers_test.go
package engine

import (
	"context"
	"testing"

	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/event"
	"github.com/opd-ai/go-pursuit/pkg/level"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

const frame = 1.0 / 60.0

func vec(x, y float64) physics.Vector2D {
	return physics.Vector2D{X: x, Y: y}
}

func testLevel(spawns ...level.Spawn) *level.Level {
	return &level.Level{
		Name:   "test",
		Bounds: physics.NewRect(physics.Vector2D{}, vec(1000, 1000)),
		Spawns: spawns,
	}
}

func playerAt(x, y float64) level.Spawn {
	return level.Spawn{Kind: entity.KindPlayer, Position: vec(x, y), Size: vec(20, 20)}
}

func enemyAt(x, y float64) level.Spawn {
	return level.Spawn{Kind: entity.KindEnemy, Position: vec(x, y), Size: vec(20, 20)}
}

func wallAt(x, y, w, h float64) level.Spawn {
	return level.Spawn{Kind: entity.KindWall, Position: vec(x, y), Size: vec(w, h)}
}

func goalAt(x, y float64) level.Spawn {
	return level.Spawn{Kind: entity.KindGoal, Position: vec(x, y)}
}

func newTestGame(t *testing.T, lvl *level.Level) *Game {
	t.Helper()
	game, err := NewGame(context.Background(), config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if err := game.Load(lvl); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return game
}

// recorder collects published events in order
type recorder struct {
	events []event.Event
}

func record(bus *event.Bus, types ...event.Type) *recorder {
	r := &recorder{}
	for _, typ := range types {
		bus.Subscribe(typ, func(e event.Event) {
			r.events = append(r.events, e)
		})
	}
	return r
}

func (r *recorder) count(typ event.Type) int {
	n := 0
	for _, e := range r.events {
		if e.GetType() == typ {
			n++
		}
	}
	return n
}

var projectileOutcomes = []event.Type{
	event.ProjectileExpired,
	event.ProjectileHitObstacle,
	event.ProjectileHitPlayer,
}

func right() Input {
	return Input{Move: vec(1, 0), Active: true}
}
