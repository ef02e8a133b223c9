// cmd/pursuit/headless_test.go
package main

import (
	"context"
	"testing"

	"github.com/opd-ai/go-pursuit/pkg/autopilot"
	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/level"
	"github.com/opd-ai/go-pursuit/pkg/logging"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

func openLevel() *level.Level {
	return &level.Level{
		Name:   "open",
		Bounds: physics.NewRect(physics.Vector2D{}, physics.Vector2D{X: 1000, Y: 1000}),
		Spawns: []level.Spawn{
			{Kind: entity.KindPlayer, Size: physics.Vector2D{X: 20, Y: 20}},
			{Kind: entity.KindGoal, Position: physics.Vector2D{X: 0, Y: 300}},
		},
	}
}

func TestRunHeadless(t *testing.T) {
	tests := []struct {
		name              string
		behavior          autopilot.Behavior
		maxTicks          uint64
		expectedCompleted bool
		expectedTicks     uint64
	}{
		{"seek_completes", autopilot.BehaviorSeek, 1000, true, 0},
		{"idle_hits_tick_limit", autopilot.BehaviorIdle, 120, false, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			game, err := engine.NewGame(ctx, config.DefaultConfig(), nil)
			if err != nil {
				t.Fatalf("NewGame() error = %v", err)
			}
			if err := game.Load(openLevel()); err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			pilot := autopilot.New(game, tt.behavior, 1)
			result, err := runHeadless(ctx, game, pilot, logging.Discard(), tt.maxTicks)
			if err != nil {
				t.Fatalf("runHeadless() error = %v", err)
			}

			if result.Completed != tt.expectedCompleted {
				t.Errorf("Completed = %v, expected %v", result.Completed, tt.expectedCompleted)
			}
			if tt.expectedTicks != 0 && result.Ticks != tt.expectedTicks {
				t.Errorf("Ticks = %d, expected %d", result.Ticks, tt.expectedTicks)
			}
			if result.Hits != 0 {
				t.Errorf("Hits = %d in a level without enemies", result.Hits)
			}
		})
	}
}

func TestRunHeadless_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	game, err := engine.NewGame(ctx, config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if err := game.Load(openLevel()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	result, err := runHeadless(ctx, game, autopilot.New(game, autopilot.BehaviorSeek, 1), logging.Discard(), 100)
	if err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}
	if result.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0 after cancellation", result.Ticks)
	}
}
