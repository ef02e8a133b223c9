// pkg/render/terminal.go
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Glyphs drawn by the terminal renderer
const (
	GlyphWall       = '█'
	GlyphFootprint  = '.'
	GlyphGoal       = 'G'
	GlyphEnemy      = 'E'
	GlyphProjectile = '*'
	GlyphPlayer     = '@'
)

var (
	styleWall        = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleFootprint   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGoal        = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleEnemyAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleProjectile  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleStatusAlert = tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true)
)

// TerminalRenderer draws snapshots as text cells on a tcell screen. The
// view follows the player; one cell spans scale world units across and
// twice that vertically, since terminal cells are about twice as tall as
// they are wide.
type TerminalRenderer struct {
	screen tcell.Screen
	scale  float64
	center physics.Vector2D
}

// NewTerminalRenderer creates a renderer on an initialised screen
func NewTerminalRenderer(screen tcell.Screen, scale float64) *TerminalRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &TerminalRenderer{screen: screen, scale: scale}
}

// SetCenter sets the world position shown in the middle of the screen
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.center = pos
}

// worldToScreen converts y-up world coordinates to screen cells
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	width, height := r.screen.Size()
	x := math.Floor((pos.X-r.center.X)/r.scale + float64(width)/2)
	y := math.Floor(-(pos.Y-r.center.Y)/(2*r.scale) + float64(height)/2)
	return int(x), int(y)
}

func (r *TerminalRenderer) put(pos physics.Vector2D, glyph rune, style tcell.Style) {
	x, y := r.worldToScreen(pos)
	width, height := r.screen.Size()
	if x >= 0 && x < width && y >= 0 && y < height {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) fill(rect physics.Rect, glyph rune, style tcell.Style) {
	lo, hi := rect.Min(), rect.Max()
	// Screen y grows downwards, so the rect's top edge maps to y0.
	x0, y0 := r.worldToScreen(physics.Vector2D{X: lo.X, Y: hi.Y})
	x1, y1 := r.worldToScreen(physics.Vector2D{X: hi.X, Y: lo.Y})
	width, height := r.screen.Size()

	for y := max0(y0); y <= y1 && y < height; y++ {
		for x := max0(x0); x <= x1 && x < width; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Render satisfies engine.SnapshotRenderer
func (r *TerminalRenderer) Render(snap engine.Snapshot) error {
	if snap.Player != nil {
		r.SetCenter(snap.Player.Position)
	}

	r.screen.Clear()

	for _, fp := range snap.Footprints {
		r.put(fp.Position, GlyphFootprint, styleFootprint)
	}
	for _, w := range snap.Walls {
		r.fill(physics.NewRect(w.Position, w.Size), GlyphWall, styleWall)
	}
	if snap.Goal != nil {
		r.put(snap.Goal.Position, GlyphGoal, styleGoal)
	}
	for _, e := range snap.Enemies {
		style := styleEnemy
		if e.CanSeePlayer {
			style = styleEnemyAlert
		}
		r.put(e.Position, GlyphEnemy, style)
	}
	for _, p := range snap.Projectiles {
		r.put(p.Position, GlyphProjectile, styleProjectile)
	}
	if snap.Player != nil {
		r.put(snap.Player.Position, GlyphPlayer, stylePlayer)
	}

	r.drawStatus(snap)
	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) drawStatus(snap engine.Snapshot) {
	line := fmt.Sprintf(" %s  tick %d  enemies %d  shots %d ", snap.Level, snap.Tick, len(snap.Enemies), len(snap.Projectiles))
	style := styleStatus
	if snap.Status == engine.StatusLevelComplete {
		line = fmt.Sprintf(" %s complete in %d ticks - r to restart, q to quit ", snap.Level, snap.Tick)
		style = styleStatusAlert
	}
	r.text(0, 0, line, style)
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range s {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
