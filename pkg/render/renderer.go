// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/logging"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// NullRenderer logs snapshots instead of drawing them. It backs headless runs.
type NullRenderer struct {
	logger   *logging.Logger
	ctx      context.Context
	every    uint64
	rendered uint64
}

// NewNullRenderer creates a renderer that logs every nth snapshot at debug level
func NewNullRenderer(ctx context.Context, logger *logging.Logger, every uint64) *NullRenderer {
	if every == 0 {
		every = 1
	}
	return &NullRenderer{logger: logger, ctx: ctx, every: every}
}

// Render satisfies engine.SnapshotRenderer
func (d *NullRenderer) Render(snap engine.Snapshot) error {
	d.rendered++
	if snap.Status == engine.StatusLevelComplete {
		d.logger.Info(d.ctx, "render level complete", "level", snap.Level, "tick", snap.Tick)
		return nil
	}
	if d.rendered%d.every != 0 {
		return nil
	}

	var player physics.Vector2D
	if snap.Player != nil {
		player = snap.Player.Position
	}
	d.logger.Debug(d.ctx, "render snapshot",
		"tick", snap.Tick,
		"player_x", player.X,
		"player_y", player.Y,
		"enemies", len(snap.Enemies),
		"projectiles", len(snap.Projectiles),
		"footprints", len(snap.Footprints),
	)
	return nil
}

// Rendered returns the number of snapshots received
func (d *NullRenderer) Rendered() uint64 {
	return d.rendered
}

// Compile-time interface checks
var (
	_ engine.SnapshotRenderer = (*NullRenderer)(nil)
	_ engine.SnapshotRenderer = (*TerminalRenderer)(nil)
	_ engine.InputSource      = (*KeyboardInput)(nil)
)
