// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Button names registered with engo
const (
	ButtonUp        = "up"
	ButtonDown      = "down"
	ButtonLeft      = "left"
	ButtonRight     = "right"
	ButtonQuit      = "quit"
	ButtonZoomIn    = "zoomIn"
	ButtonZoomOut   = "zoomOut"
	ButtonResetZoom = "resetZoom"
)

// InputSystem reads the movement keys. It implements engine.InputSource.
type InputSystem struct {
	buttons func(name string) bool
}

// NewInputSystem creates an input source reading engo's button state
func NewInputSystem() *InputSystem {
	return &InputSystem{buttons: buttonDown}
}

// Movement returns the held direction keys as a vector; up is +y
func (is *InputSystem) Movement() (physics.Vector2D, bool) {
	var move physics.Vector2D
	if is.buttons(ButtonUp) {
		move.Y++
	}
	if is.buttons(ButtonDown) {
		move.Y--
	}
	if is.buttons(ButtonLeft) {
		move.X--
	}
	if is.buttons(ButtonRight) {
		move.X++
	}
	return move, !move.IsZero()
}

// QuitRequested reports whether the quit key is held
func (is *InputSystem) QuitRequested() bool {
	return is.buttons(ButtonQuit)
}

// SetupInputBindings registers the game's key bindings
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonUp, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonDown, engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
	engo.Input.RegisterButton(ButtonZoomIn, engo.KeyE)
	engo.Input.RegisterButton(ButtonZoomOut, engo.KeyQ)
	engo.Input.RegisterButton(ButtonResetZoom, engo.KeyR)
}

func buttonDown(name string) bool {
	if engo.Input == nil {
		return false
	}
	return engo.Input.Button(name).Down()
}
