// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/logging"
)

// GameScene runs a Game inside engo's main loop
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger
	scale  float32

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	runner   *engine.Runner

	exit func()
}

// NewGameScene creates a scene drawing scale pixels per world unit
func NewGameScene(game *engine.Game, logger *logging.Logger, scale float32) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{
		game:   game,
		logger: logger,
		scale:  scale,
		exit:   engo.Exit,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "PursuitScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world := u.(*ecs.World)

	common.SetBackground(color.RGBA{12, 12, 16, 255})
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.wire(renderSystem)
	world.AddSystem(&stepSystem{scene: scene})
	world.AddSystem(scene.camera)
}

// wire connects the game to a sprite sink
func (scene *GameScene) wire(sink spriteSink) {
	scene.renderer = NewEngoRenderer(sink, scene.scale)
	scene.camera = NewCameraSystem(scene.scale)
	scene.input = NewInputSystem()
	scene.runner = engine.NewRunner(scene.game, scene.input, scene.renderer)
}

// step advances the game by one engo frame
func (scene *GameScene) step(dt float32) {
	if scene.input.QuitRequested() {
		scene.exit()
		return
	}

	if err := scene.runner.Step(float64(dt)); err != nil {
		scene.logger.Error(context.Background(), "frame failed", err)
		return
	}

	if pos, ok := scene.renderer.PlayerPosition(); ok {
		scene.camera.SetTarget(pos)
	} else {
		scene.camera.ClearTarget()
	}
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.logger.Info(context.Background(), "scene exited", "tick", scene.game.CurrentTick())
}

// stepSystem ticks the game from engo's update loop
type stepSystem struct {
	scene *GameScene
}

func (s *stepSystem) Update(dt float32) { s.scene.step(dt) }

func (s *stepSystem) Remove(ecs.BasicEntity) {}

// Run opens a window and blocks until it is closed
func Run(scene *GameScene, title string, width, height int) {
	engo.Run(engo.RunOptions{
		Title:  title,
		Width:  width,
		Height: height,
	}, scene)
}
