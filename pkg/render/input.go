// pkg/render/input.go
package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// DefaultKeyHold is how long a key press counts as held. Terminals report
// presses and repeats but never releases.
const DefaultKeyHold = 150 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

var directionVectors = [...]physics.Vector2D{
	dirUp:    {Y: 1},
	dirDown:  {Y: -1},
	dirLeft:  {X: -1},
	dirRight: {X: 1},
}

// KeyboardInput turns tcell key events into movement. It satisfies
// engine.InputSource.
type KeyboardInput struct {
	mu      sync.Mutex
	pressed map[direction]time.Time
	hold    time.Duration
	now     func() time.Time
}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput(hold time.Duration) *KeyboardInput {
	return &KeyboardInput{
		pressed: make(map[direction]time.Time),
		hold:    hold,
		now:     time.Now,
	}
}

// HandleEvent records movement keys. It returns false when the event asks
// to quit.
func (k *KeyboardInput) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	var dir direction
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		dir = dirUp
	case tcell.KeyDown:
		dir = dirDown
	case tcell.KeyLeft:
		dir = dirLeft
	case tcell.KeyRight:
		dir = dirRight
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			dir = dirUp
		case 's', 'S':
			dir = dirDown
		case 'a', 'A':
			dir = dirLeft
		case 'd', 'D':
			dir = dirRight
		default:
			return true
		}
	default:
		return true
	}

	k.mu.Lock()
	k.pressed[dir] = k.now()
	k.mu.Unlock()
	return true
}

// Movement returns the sum of the directions held within the hold window
func (k *KeyboardInput) Movement() (physics.Vector2D, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	var move physics.Vector2D
	for dir, at := range k.pressed {
		if now.Sub(at) > k.hold {
			delete(k.pressed, dir)
			continue
		}
		move = move.Add(directionVectors[dir])
	}
	return move, !move.IsZero()
}
