// pkg/engine/runner.go
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/opd-ai/go-pursuit/pkg/physics"
)

//go:generate mockgen -source=runner.go -destination=mocks/runner.go -package=mocks

// InputSource supplies the player's movement intent once per frame
type InputSource interface {
	Movement() (physics.Vector2D, bool)
}

// SnapshotRenderer draws a snapshot of the game
type SnapshotRenderer interface {
	Render(snapshot Snapshot) error
}

// Runner drives a Game from wall-clock time: it polls input, ticks the game
// and renders the result once per frame.
type Runner struct {
	game     *Game
	input    InputSource
	renderer SnapshotRenderer
	maxDelta float64
	now      func() time.Time
}

// NewRunner creates a runner. Frame times longer than the configured
// maximum delta are clamped.
func NewRunner(game *Game, input InputSource, renderer SnapshotRenderer) *Runner {
	return &Runner{
		game:     game,
		input:    input,
		renderer: renderer,
		maxDelta: game.Config.World.MaxDeltaTime,
		now:      time.Now,
	}
}

// Step runs a single frame of dt seconds
func (r *Runner) Step(dt float64) error {
	if dt > r.maxDelta {
		dt = r.maxDelta
	}

	move, active := r.input.Movement()
	r.game.Tick(dt, Input{Move: move, Active: active})

	if err := r.renderer.Render(r.game.Snapshot()); err != nil {
		return fmt.Errorf("render tick %d: %w", r.game.CurrentTick(), err)
	}
	return nil
}

// Run steps the game every frame until ctx is cancelled, rendering fails
// or the level is completed.
func (r *Runner) Run(ctx context.Context, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := r.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := r.now()
			dt := now.Sub(last).Seconds()
			last = now

			if err := r.Step(dt); err != nil {
				return err
			}
			if r.game.Status() == StatusLevelComplete {
				return nil
			}
		}
	}
}
