// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// Z indices, back to front
const (
	zWall float32 = iota
	zFootprint
	zGoal
	zProjectile
	zEnemy
	zPlayer
)

var (
	colorWall       = color.RGBA{70, 90, 140, 255}
	colorFootprint  = color.RGBA{90, 90, 90, 255}
	colorGoal       = color.RGBA{40, 200, 80, 255}
	colorProjectile = color.RGBA{255, 220, 0, 255}
	colorEnemy      = color.RGBA{160, 30, 30, 255}
	colorAlert      = color.RGBA{255, 60, 60, 255}
	colorPlayer     = color.RGBA{240, 240, 240, 255}
)

// footprintSize is the drawn size of a footprint in world units
var footprintSize = physics.Vector2D{X: 5, Y: 5}

// spriteSink receives sprites; common.RenderSystem satisfies it
type spriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer mirrors snapshots into engo render entities. It implements
// engine.SnapshotRenderer.
type EngoRenderer struct {
	sink  spriteSink
	scale float32

	sprites    map[uint64]*sprite
	seen       map[uint64]bool
	footprints []*sprite

	player    physics.Vector2D
	hasPlayer bool
}

// NewEngoRenderer creates a renderer drawing scale pixels per world unit
func NewEngoRenderer(sink spriteSink, scale float32) *EngoRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &EngoRenderer{
		sink:    sink,
		scale:   scale,
		sprites: make(map[uint64]*sprite),
		seen:    make(map[uint64]bool),
	}
}

// Render implements engine.SnapshotRenderer
func (r *EngoRenderer) Render(snap engine.Snapshot) error {
	clear(r.seen)

	for _, w := range snap.Walls {
		r.upsert(w.ID, w.Position, w.Size, &common.Rectangle{}, colorWall, zWall)
	}
	if snap.Goal != nil {
		size := physics.Vector2D{X: 2 * snap.Goal.Radius, Y: 2 * snap.Goal.Radius}
		r.upsert(snap.Goal.ID, snap.Goal.Position, size, &common.Circle{}, colorGoal, zGoal)
	}
	for _, p := range snap.Projectiles {
		r.upsert(p.ID, p.Position, p.Size, &common.Circle{}, colorProjectile, zProjectile)
	}
	for _, e := range snap.Enemies {
		c := colorEnemy
		if e.CanSeePlayer {
			c = colorAlert
		}
		r.upsert(e.ID, e.Position, e.Size, &common.Rectangle{}, c, zEnemy)
	}

	r.hasPlayer = snap.Player != nil
	if r.hasPlayer {
		r.player = snap.Player.Position
		r.upsert(snap.Player.ID, snap.Player.Position, snap.Player.Size, &common.Rectangle{}, colorPlayer, zPlayer)
	}

	for id, s := range r.sprites {
		if !r.seen[id] {
			r.sink.Remove(s.BasicEntity)
			delete(r.sprites, id)
		}
	}

	r.renderFootprints(snap.Footprints)
	return nil
}

func (r *EngoRenderer) upsert(id uint64, center, size physics.Vector2D, shape common.Drawable, c color.Color, z float32) {
	r.seen[id] = true

	s, ok := r.sprites[id]
	if !ok {
		s = &sprite{BasicEntity: ecs.NewBasic()}
		s.RenderComponent = common.RenderComponent{Drawable: shape}
		s.SetZIndex(z)
		r.sprites[id] = s
		r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
	s.Color = c
	r.place(s, center, size)
}

func (r *EngoRenderer) renderFootprints(prints []entity.Footprint) {
	for len(r.footprints) > len(prints) {
		last := r.footprints[len(r.footprints)-1]
		r.sink.Remove(last.BasicEntity)
		r.footprints = r.footprints[:len(r.footprints)-1]
	}
	for len(r.footprints) < len(prints) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.RenderComponent = common.RenderComponent{Drawable: &common.Circle{}, Color: colorFootprint}
		s.SetZIndex(zFootprint)
		r.footprints = append(r.footprints, s)
		r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
	for i, fp := range prints {
		r.place(r.footprints[i], fp.Position, footprintSize)
	}
}

// place positions a sprite by its centre. engo's y axis points down and
// SpaceComponent.Position is the top-left corner.
func (r *EngoRenderer) place(s *sprite, center, size physics.Vector2D) {
	p := r.worldToScreen(center)
	w, h := float32(size.X)*r.scale, float32(size.Y)*r.scale
	s.Width = w
	s.Height = h
	s.Position = engo.Point{X: p.X - w/2, Y: p.Y - h/2}
}

// worldToScreen converts y-up world coordinates to engo pixels
func (r *EngoRenderer) worldToScreen(pos physics.Vector2D) engo.Point {
	return engo.Point{X: float32(pos.X) * r.scale, Y: -float32(pos.Y) * r.scale}
}

// PlayerPosition returns the player's position in the last snapshot
func (r *EngoRenderer) PlayerPosition() (physics.Vector2D, bool) {
	return r.player, r.hasPlayer
}

// Len returns the number of live sprites, footprints included
func (r *EngoRenderer) Len() int {
	return len(r.sprites) + len(r.footprints)
}
