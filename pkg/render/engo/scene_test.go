// pkg/render/engo/scene_test.go
package engo

import (
	"context"
	"testing"

	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/level"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

func newTestScene(t *testing.T, pressed ...string) (*GameScene, *fakeSink) {
	t.Helper()

	game, err := engine.NewGame(context.Background(), config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	lvl := &level.Level{
		Name:   "scene",
		Bounds: physics.NewRect(physics.Vector2D{}, vec(100, 100)),
		Spawns: []level.Spawn{
			{Kind: entity.KindPlayer, Position: vec(1, 2), Size: vec(1, 1)},
			{Kind: entity.KindWall, Position: vec(10, 0), Size: vec(1, 10)},
		},
	}
	if err := game.Load(lvl); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sink := newFakeSink()
	scene := NewGameScene(game, nil, 10)
	scene.wire(sink)
	scene.input.buttons = pressing(pressed...)
	scene.camera.buttons = pressing()
	scene.camera.dispatch = dispatchMessage
	return scene, sink
}

func TestGameScene_Type(t *testing.T) {
	scene := NewGameScene(nil, nil, 1)
	if got := scene.Type(); got != "PursuitScene" {
		t.Errorf("Type() = %q", got)
	}
}

func TestGameScene_StepTicksAndRenders(t *testing.T) {
	scene, sink := newTestScene(t)

	scene.step(1.0 / 60)

	if got := scene.game.CurrentTick(); got != 1 {
		t.Errorf("CurrentTick() = %d, expected 1", got)
	}
	if got := len(sink.added); got != 2 {
		t.Errorf("sink holds %d sprites, expected 2", got)
	}
	if got := scene.camera.CurrentPosition(); got != vec(1, 2) {
		t.Errorf("camera at %v, expected player position (1, 2)", got)
	}
}

func TestGameScene_StepMovesPlayer(t *testing.T) {
	scene, _ := newTestScene(t, ButtonRight)

	for i := 0; i < 30; i++ {
		scene.step(1.0 / 60)
	}

	pos, ok := scene.renderer.PlayerPosition()
	if !ok {
		t.Fatal("player missing from render")
	}
	if pos.X <= 1 {
		t.Errorf("player x = %v, expected it to have moved right of 1", pos.X)
	}
}

func TestGameScene_QuitStopsStepping(t *testing.T) {
	scene, _ := newTestScene(t, ButtonQuit)
	exited := 0
	scene.exit = func() { exited++ }

	scene.step(1.0 / 60)

	if exited != 1 {
		t.Errorf("exit called %d times, expected 1", exited)
	}
	if got := scene.game.CurrentTick(); got != 0 {
		t.Errorf("CurrentTick() = %d, expected 0 after quit", got)
	}
}
