// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// CameraSystem keeps the engo camera on the player
type CameraSystem struct {
	target    physics.Vector2D
	targetSet bool

	// pixels per world unit
	scale float32

	zoom    float32
	minZoom float32
	maxZoom float32

	followSpeed float32
	smoothing   bool

	currentPos physics.Vector2D
	placed     bool

	buttons  func(name string) bool
	dispatch func(msg engo.Message)
}

// NewCameraSystem creates a camera for a renderer drawing scale pixels per unit
func NewCameraSystem(scale float32) *CameraSystem {
	return &CameraSystem{
		scale:       scale,
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     4.0,
		followSpeed: 6.0,
		smoothing:   true,
		buttons:     buttonDown,
		dispatch:    dispatchMessage,
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update moves the camera toward its target and applies zoom input
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}

	cs.applyCameraTransform()
}

func (cs *CameraSystem) handleZoomInput() {
	switch {
	case cs.buttons(ButtonZoomIn):
		cs.SetZoom(cs.zoom * 1.02)
	case cs.buttons(ButtonZoomOut):
		cs.SetZoom(cs.zoom * 0.98)
	case cs.buttons(ButtonResetZoom):
		cs.SetZoom(1.0)
	}
}

func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}

	t := float64(cs.followSpeed * dt)
	if t > 1 {
		t = 1
	}
	cs.currentPos = cs.currentPos.Lerp(cs.target, t)
}

func (cs *CameraSystem) applyCameraTransform() {
	p := cs.WorldToScreen(cs.currentPos)
	cs.dispatch(common.CameraMessage{Axis: common.XAxis, Value: p.X})
	cs.dispatch(common.CameraMessage{Axis: common.YAxis, Value: p.Y})
	cs.dispatch(common.CameraMessage{Axis: common.ZAxis, Value: 1 / cs.zoom})
}

// SetTarget sets the world position to follow. The first target is
// adopted immediately.
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true

	if !cs.placed {
		cs.currentPos = target
		cs.placed = true
	}
}

// ClearTarget stops following
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the zoom level within the camera's limits
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = min(max(zoom, cs.minZoom), cs.maxZoom)
}

// Zoom returns the zoom level
func (cs *CameraSystem) Zoom() float32 {
	return cs.zoom
}

// EnableSmoothing toggles interpolated following
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// CurrentPosition returns the world position the camera is centred on
func (cs *CameraSystem) CurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// WorldToScreen converts y-up world coordinates to engo pixels
func (cs *CameraSystem) WorldToScreen(pos physics.Vector2D) engo.Point {
	return engo.Point{X: float32(pos.X) * cs.scale, Y: -float32(pos.Y) * cs.scale}
}

// ScreenToWorld is the inverse of WorldToScreen
func (cs *CameraSystem) ScreenToWorld(p engo.Point) physics.Vector2D {
	return physics.Vector2D{X: float64(p.X / cs.scale), Y: float64(-p.Y / cs.scale)}
}

func dispatchMessage(msg engo.Message) {
	if engo.Mailbox != nil {
		engo.Mailbox.Dispatch(msg)
	}
}
