// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Type represents the type of event
type Type string

// Gameplay event types emitted by the simulation
const (
	LevelLoaded           Type = "level_loaded"
	FootstepTaken         Type = "footstep_taken"
	EnemyShot             Type = "enemy_shot"
	ProjectileHitObstacle Type = "projectile_hit_obstacle"
	ProjectileHitPlayer   Type = "projectile_hit_player"
	ProjectileExpired     Type = "projectile_expired"
	LevelCompleted        Type = "level_completed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.Unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// Foot names which foot a footstep landed on.
type Foot int

const (
	FootLeft Foot = iota
	FootRight
)

func (f Foot) String() string {
	if f == FootLeft {
		return "left"
	}
	return "right"
}

// FootstepEvent is emitted each time the player's footstep cadence fires.
type FootstepEvent struct {
	BaseEvent
	Foot     Foot
	Position physics.Vector2D
}

// NewFootstepEvent creates a new footstep event
func NewFootstepEvent(source interface{}, foot Foot, position physics.Vector2D) *FootstepEvent {
	return &FootstepEvent{
		BaseEvent: BaseEvent{EventType: FootstepTaken, Source: source},
		Foot:      foot,
		Position:  position,
	}
}

// ShootEvent is emitted when an enemy fires at the player.
type ShootEvent struct {
	BaseEvent
	EnemyID      uint64
	ProjectileID uint64
	Origin       physics.Vector2D
	Direction    physics.Vector2D
}

// NewShootEvent creates a new shoot event
func NewShootEvent(source interface{}, enemyID, projectileID uint64, origin, direction physics.Vector2D) *ShootEvent {
	return &ShootEvent{
		BaseEvent:    BaseEvent{EventType: EnemyShot, Source: source},
		EnemyID:      enemyID,
		ProjectileID: projectileID,
		Origin:       origin,
		Direction:    direction,
	}
}

// ProjectileEvent reports how a projectile ended. Type is one of
// ProjectileHitObstacle, ProjectileHitPlayer or ProjectileExpired.
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	Position     physics.Vector2D
}

// NewProjectileEvent creates a projectile termination event
func NewProjectileEvent(eventType Type, source interface{}, projectileID uint64, position physics.Vector2D) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent:    BaseEvent{EventType: eventType, Source: source},
		ProjectileID: projectileID,
		Position:     position,
	}
}

// LevelEvent carries level lifecycle notifications.
type LevelEvent struct {
	BaseEvent
	Name string
	Tick uint64
}

// NewLevelEvent creates a level lifecycle event
func NewLevelEvent(eventType Type, source interface{}, name string, tick uint64) *LevelEvent {
	return &LevelEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Name:      name,
		Tick:      tick,
	}
}
