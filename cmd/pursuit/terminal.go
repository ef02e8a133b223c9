// cmd/pursuit/terminal.go
package main

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/logging"
	"github.com/opd-ai/go-pursuit/pkg/render"
)

// errQuit ends the terminal client when the player presses a quit key
var errQuit = errors.New("quit requested")

// runTerminal plays the loaded level in the terminal until the player quits
// or ctx is cancelled. After the level is completed the final frame stays up
// until the player quits or presses r to restart.
func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialise screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	keyboard := render.NewKeyboardInput(render.DefaultKeyHold)
	runner := engine.NewRunner(game, keyboard, render.NewTerminalRenderer(screen, game.Config.Unit/2))

	g, gctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 16)
	restart := make(chan struct{}, 1)
	go pollEvents(gctx, screen, events)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
					continue
				}
				if isRestartKey(ev) {
					if err := game.Restart(); err != nil {
						return err
					}
					select {
					case restart <- struct{}{}:
					default:
					}
					continue
				}
				if !keyboard.HandleEvent(ev) {
					return errQuit
				}
			}
		}
	})

	g.Go(func() error {
		for {
			if err := runner.Run(gctx, frameTime); err != nil {
				return err
			}
			if game.Status() == engine.StatusLevelComplete {
				logger.Info(gctx, "Level complete, waiting for restart or quit", "tick", game.CurrentTick())
			}

			select {
			case <-gctx.Done():
				return nil
			case <-restart:
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func isRestartKey(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	return ok && key.Key() == tcell.KeyRune && (key.Rune() == 'r' || key.Rune() == 'R')
}

// pollEvents forwards screen events until the screen is finalised
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
