// pkg/level/generate.go
package level

import (
	"fmt"
	"math/rand/v2"

	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

const (
	// Walls are placed on a unit grid within this many units of the origin.
	wallGridRange = 15
	wallMaxLength = 9
	placeAttempts = 16
)

// Generate builds a random arena centered on the origin: boundary walls on
// the window edges, scattered interior walls, enemies around the player and
// a goal in the top-right corner. The same config and seed always produce
// the same level.
func Generate(cfg *config.GameConfig, seed uint64) *Level {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	unit := cfg.Unit
	w, h := cfg.World.Width, cfg.World.Height

	lvl := &Level{
		Name:   fmt.Sprintf("generated-%d", seed),
		Bounds: physics.NewRect(physics.Vector2D{}, physics.Vector2D{X: w, Y: h}),
	}

	playerSize := physics.Vector2D{X: cfg.Player.Size, Y: cfg.Player.Size}
	lvl.Spawns = append(lvl.Spawns, Spawn{Kind: entity.KindPlayer, Size: playerSize})
	// Keep a clear square around the player so it never starts inside a wall.
	clearing := physics.NewRect(physics.Vector2D{}, playerSize.Add(physics.Vector2D{X: 2 * unit, Y: 2 * unit}))

	lvl.Spawns = append(lvl.Spawns, boundary(w, h, unit)...)

	var obstacles []physics.Rect
	for i := 0; i < cfg.World.WallCount; i++ {
		for attempt := 0; attempt < placeAttempts; attempt++ {
			pos := physics.Vector2D{
				X: float64(rng.IntN(2*wallGridRange)-wallGridRange) * unit,
				Y: float64(rng.IntN(2*wallGridRange)-wallGridRange) * unit,
			}
			size := physics.Vector2D{X: float64(rng.IntN(wallMaxLength)+1) * unit, Y: unit}
			if rng.Float64() > 0.5 {
				size = physics.Vector2D{X: size.Y, Y: size.X}
			}
			rect := physics.NewRect(pos, size)
			if rect.Overlaps(clearing) {
				continue
			}
			obstacles = append(obstacles, rect)
			lvl.Spawns = append(lvl.Spawns, Spawn{Kind: entity.KindWall, Position: pos, Size: size})
			break
		}
	}

	enemySize := physics.Vector2D{X: cfg.Enemies.Size, Y: cfg.Enemies.Size}
	spread := cfg.Enemies.SpawnRange
	for i := 0; i < cfg.Enemies.Count; i++ {
		var pos physics.Vector2D
		for attempt := 0; attempt < placeAttempts; attempt++ {
			pos = physics.Vector2D{
				X: rng.Float64()*2*spread - spread,
				Y: rng.Float64()*2*spread - spread,
			}
			if !blocked(physics.NewRect(pos, enemySize), obstacles) {
				break
			}
		}
		lvl.Spawns = append(lvl.Spawns, Spawn{Kind: entity.KindEnemy, Position: pos, Size: enemySize})
	}

	goalSize := physics.Vector2D{X: 2 * cfg.World.GoalRadius, Y: 2 * cfg.World.GoalRadius}
	lvl.Spawns = append(lvl.Spawns, Spawn{
		Kind:     entity.KindGoal,
		Position: physics.Vector2D{X: w/2 - 3*unit, Y: h/2 - 3*unit},
		Size:     goalSize,
	})

	return lvl
}

// boundary returns four walls lining the inside of a w×h window
func boundary(w, h, unit float64) []Spawn {
	return []Spawn{
		{Kind: entity.KindWall, Position: physics.Vector2D{Y: h/2 - unit/2}, Size: physics.Vector2D{X: w, Y: unit}},
		{Kind: entity.KindWall, Position: physics.Vector2D{Y: -h/2 + unit/2}, Size: physics.Vector2D{X: w, Y: unit}},
		{Kind: entity.KindWall, Position: physics.Vector2D{X: -w/2 + unit/2}, Size: physics.Vector2D{X: unit, Y: h}},
		{Kind: entity.KindWall, Position: physics.Vector2D{X: w/2 - unit/2}, Size: physics.Vector2D{X: unit, Y: h}},
	}
}

func blocked(r physics.Rect, obstacles []physics.Rect) bool {
	for _, o := range obstacles {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
