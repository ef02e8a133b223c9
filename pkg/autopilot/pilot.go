// pkg/autopilot/pilot.go
package autopilot

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Behavior selects how a Pilot moves
type Behavior int

const (
	BehaviorSeek   Behavior = iota // Heads for the goal
	BehaviorEvade                  // Runs from enemies that can see it, otherwise seeks
	BehaviorWander                 // Picks a random heading now and then
	BehaviorIdle                   // Never moves
)

// ErrUnknownBehavior is returned by ParseBehavior
var ErrUnknownBehavior = errors.New("unknown autopilot behavior")

var behaviorNames = [...]string{
	BehaviorSeek:   "seek",
	BehaviorEvade:  "evade",
	BehaviorWander: "wander",
	BehaviorIdle:   "idle",
}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
	return behaviorNames[b]
}

// ParseBehavior maps a behavior name to its value
func ParseBehavior(name string) (Behavior, error) {
	for b, n := range behaviorNames {
		if n == name {
			return Behavior(b), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBehavior, name)
}

// DefaultWanderInterval is the number of ticks between wander heading changes
const DefaultWanderInterval = 45

// SnapshotSource provides the state a Pilot steers by. *engine.Game
// satisfies it.
type SnapshotSource interface {
	Snapshot() engine.Snapshot
}

// Pilot produces movement from game snapshots. It implements
// engine.InputSource.
type Pilot struct {
	source   SnapshotSource
	behavior Behavior

	mu             sync.Mutex
	rng            *rand.Rand
	heading        physics.Vector2D
	headingTick    uint64
	hasHeading     bool
	WanderInterval uint64
}

// New creates a pilot. seed drives the wander behavior.
func New(source SnapshotSource, behavior Behavior, seed uint64) *Pilot {
	return &Pilot{
		source:         source,
		behavior:       behavior,
		rng:            rand.New(rand.NewPCG(seed, uint64(behavior))),
		WanderInterval: DefaultWanderInterval,
	}
}

// Behavior returns the pilot's behavior
func (p *Pilot) Behavior() Behavior {
	return p.behavior
}

// Movement implements engine.InputSource
func (p *Pilot) Movement() (physics.Vector2D, bool) {
	snap := p.source.Snapshot()
	if snap.Player == nil || snap.Status != engine.StatusPlaying {
		return physics.Vector2D{}, false
	}

	var want physics.Vector2D
	switch p.behavior {
	case BehaviorSeek:
		want = seek(snap)
	case BehaviorEvade:
		want = evade(snap)
		if want.IsZero() {
			want = seek(snap)
		}
	case BehaviorWander:
		want = p.wander(snap.Tick)
	}

	move := steerAround(snap, want)
	return move, !move.IsZero()
}

func seek(snap engine.Snapshot) physics.Vector2D {
	if snap.Goal == nil {
		return physics.Vector2D{}
	}
	return snap.Goal.Position.Sub(snap.Player.Position).Normalize()
}

// evade heads away from the nearest enemy that can see the player
func evade(snap engine.Snapshot) physics.Vector2D {
	nearest := math.Inf(1)
	var away physics.Vector2D
	for _, e := range snap.Enemies {
		if !e.CanSeePlayer {
			continue
		}
		d := e.Position.Distance(snap.Player.Position)
		if d < nearest {
			nearest = d
			away = snap.Player.Position.Sub(e.Position).Normalize()
		}
	}
	return away
}

func (p *Pilot) wander(tick uint64) physics.Vector2D {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasHeading || tick-p.headingTick >= p.WanderInterval {
		angle := p.rng.Float64() * 2 * math.Pi
		p.heading = physics.Vector2D{X: math.Cos(angle), Y: math.Sin(angle)}
		p.headingTick = tick
		p.hasHeading = true
	}
	return p.heading
}

// steerAround keeps the wanted direction when a body length ahead is clear,
// otherwise slides along whichever axis is free.
func steerAround(snap engine.Snapshot, want physics.Vector2D) physics.Vector2D {
	if want.IsZero() {
		return want
	}

	walls := make([]physics.Rect, len(snap.Walls))
	for i, w := range snap.Walls {
		walls[i] = physics.NewRect(w.Position, w.Size)
	}

	body := physics.NewRect(snap.Player.Position, snap.Player.Size)
	reach := math.Max(snap.Player.Size.X, snap.Player.Size.Y)

	open := func(dir physics.Vector2D) bool {
		if dir.IsZero() {
			return false
		}
		box := body.At(body.Center.Add(dir.Normalize().Scale(reach)))
		for _, w := range walls {
			if box.Overlaps(w) {
				return false
			}
		}
		return true
	}

	candidates := []physics.Vector2D{
		want,
		{X: sign(want.X)},
		{Y: sign(want.Y)},
		want.Perp(),
		want.Perp().Scale(-1),
	}
	for _, c := range candidates {
		if open(c) {
			return c.Normalize()
		}
	}
	return physics.Vector2D{}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
