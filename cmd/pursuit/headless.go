// cmd/pursuit/headless.go
package main

import (
	"context"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/event"
	"github.com/opd-ai/go-pursuit/pkg/logging"
	"github.com/opd-ai/go-pursuit/pkg/render"
)

// headlessResult summarises a headless run
type headlessResult struct {
	Ticks     uint64
	Completed bool
	Hits      int
}

// runHeadless steps the game at a fixed frame time, as fast as possible,
// until the level is completed, maxTicks have run or ctx is cancelled.
func runHeadless(ctx context.Context, game *engine.Game, input engine.InputSource, logger *logging.Logger, maxTicks uint64) (headlessResult, error) {
	hits := 0
	sub := game.EventBus.Subscribe(event.ProjectileHitPlayer, func(event.Event) { hits++ })
	defer sub.Cancel()

	runner := engine.NewRunner(game, input, render.NewNullRenderer(ctx, logger, 60))
	dt := frameTime.Seconds()

	for game.CurrentTick() < maxTicks && game.Status() == engine.StatusPlaying {
		if ctx.Err() != nil {
			break
		}
		if err := runner.Step(dt); err != nil {
			return headlessResult{}, err
		}
	}

	return headlessResult{
		Ticks:     game.CurrentTick(),
		Completed: game.Status() == engine.StatusLevelComplete,
		Hits:      hits,
	}, nil
}
