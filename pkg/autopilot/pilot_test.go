// pkg/autopilot/pilot_test.go
package autopilot

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/level"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

type fixedSource struct {
	snap engine.Snapshot
}

func (f *fixedSource) Snapshot() engine.Snapshot { return f.snap }

func vec(x, y float64) physics.Vector2D {
	return physics.Vector2D{X: x, Y: y}
}

func near(a, b physics.Vector2D) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func baseSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Status: engine.StatusPlaying,
		Player: &engine.PlayerState{Position: vec(0, 0), Size: vec(20, 20)},
		Goal:   &engine.GoalState{Position: vec(100, 0), Radius: 20},
	}
}

func TestParseBehavior(t *testing.T) {
	tests := []struct {
		name        string
		expected    Behavior
		expectedErr bool
	}{
		{"seek", BehaviorSeek, false},
		{"evade", BehaviorEvade, false},
		{"wander", BehaviorWander, false},
		{"idle", BehaviorIdle, false},
		{"dance", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBehavior(tt.name)
			if tt.expectedErr {
				if !errors.Is(err, ErrUnknownBehavior) {
					t.Errorf("ParseBehavior(%q) error = %v, expected ErrUnknownBehavior", tt.name, err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("ParseBehavior(%q) = %v, %v", tt.name, got, err)
			}
			if got.String() != tt.name {
				t.Errorf("String() = %q, expected %q", got.String(), tt.name)
			}
		})
	}
}

func TestPilot_Movement(t *testing.T) {
	tests := []struct {
		name           string
		behavior       Behavior
		modify         func(*engine.Snapshot)
		expected       physics.Vector2D
		expectedActive bool
	}{
		{
			name:           "seek_heads_for_goal",
			behavior:       BehaviorSeek,
			expected:       vec(1, 0),
			expectedActive: true,
		},
		{
			name:     "seek_slides_past_wall",
			behavior: BehaviorSeek,
			modify: func(s *engine.Snapshot) {
				s.Goal.Position = vec(100, 100)
				s.Walls = []engine.WallState{{Position: vec(30, 0), Size: vec(20, 200)}}
			},
			expected:       vec(0, 1),
			expectedActive: true,
		},
		{
			name:     "boxed_in_stays_put",
			behavior: BehaviorSeek,
			modify: func(s *engine.Snapshot) {
				s.Walls = []engine.WallState{{Position: vec(0, 0), Size: vec(100, 100)}}
			},
			expectedActive: false,
		},
		{
			name:     "evade_runs_from_watching_enemy",
			behavior: BehaviorEvade,
			modify: func(s *engine.Snapshot) {
				s.Enemies = []engine.EnemyState{
					{Position: vec(0, 50), CanSeePlayer: true},
					{Position: vec(-10, 0)},
				}
			},
			expected:       vec(0, -1),
			expectedActive: true,
		},
		{
			name:           "evade_without_threat_seeks",
			behavior:       BehaviorEvade,
			expected:       vec(1, 0),
			expectedActive: true,
		},
		{
			name:           "idle",
			behavior:       BehaviorIdle,
			expectedActive: false,
		},
		{
			name:           "no_player",
			behavior:       BehaviorSeek,
			modify:         func(s *engine.Snapshot) { s.Player = nil },
			expectedActive: false,
		},
		{
			name:           "level_complete",
			behavior:       BehaviorSeek,
			modify:         func(s *engine.Snapshot) { s.Status = engine.StatusLevelComplete },
			expectedActive: false,
		},
		{
			name:           "seek_without_goal",
			behavior:       BehaviorSeek,
			modify:         func(s *engine.Snapshot) { s.Goal = nil },
			expectedActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := baseSnapshot()
			if tt.modify != nil {
				tt.modify(&snap)
			}
			p := New(&fixedSource{snap: snap}, tt.behavior, 1)

			move, active := p.Movement()
			if active != tt.expectedActive {
				t.Fatalf("Movement() active = %v, expected %v (move %v)", active, tt.expectedActive, move)
			}
			if !near(move, tt.expected) {
				t.Errorf("Movement() = %v, expected %v", move, tt.expected)
			}
		})
	}
}

func TestPilot_WanderKeepsHeadingBetweenChanges(t *testing.T) {
	src := &fixedSource{snap: baseSnapshot()}
	src.snap.Player.Position = vec(0, 0)
	p := New(src, BehaviorWander, 7)
	p.WanderInterval = 10

	first, _ := p.Movement()
	if math.Abs(first.Length()-1) > 1e-9 {
		t.Fatalf("wander heading length = %v, expected 1", first.Length())
	}

	src.snap.Tick = 9
	if again, _ := p.Movement(); !near(again, first) {
		t.Errorf("heading changed before the interval: %v then %v", first, again)
	}

	src.snap.Tick = 10
	p.Movement()
	if p.headingTick != 10 {
		t.Errorf("headingTick = %d, expected 10", p.headingTick)
	}
}

func TestPilot_WanderIsSeeded(t *testing.T) {
	a := New(&fixedSource{snap: baseSnapshot()}, BehaviorWander, 42)
	b := New(&fixedSource{snap: baseSnapshot()}, BehaviorWander, 42)

	ma, _ := a.Movement()
	mb, _ := b.Movement()
	if ma != mb {
		t.Errorf("same seed gave %v and %v", ma, mb)
	}
}

func TestPilot_SeekReachesGoal(t *testing.T) {
	game, err := engine.NewGame(context.Background(), config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	lvl := &level.Level{
		Name:   "straight",
		Bounds: physics.NewRect(physics.Vector2D{}, vec(1000, 1000)),
		Spawns: []level.Spawn{
			{Kind: entity.KindPlayer, Position: vec(0, 0), Size: vec(20, 20)},
			{Kind: entity.KindGoal, Position: vec(200, 0)},
		},
	}
	if err := game.Load(lvl); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	runner := engine.NewRunner(game, New(game, BehaviorSeek, 1), nopRenderer{})
	for i := 0; i < 600 && game.Status() == engine.StatusPlaying; i++ {
		if err := runner.Step(1.0 / 60); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	if game.Status() != engine.StatusLevelComplete {
		t.Errorf("Status() = %v after 600 ticks, expected level complete", game.Status())
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(engine.Snapshot) error { return nil }
