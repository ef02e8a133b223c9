// pkg/level/ldtk.go
package level

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/go-pursuit/pkg/entity"
	"github.com/opd-ai/go-pursuit/pkg/physics"
)

// LDtk project layout. Only the fields the loader needs are decoded.
type ldtkProject struct {
	Levels []ldtkLevel `json:"levels"`
}

type ldtkLevel struct {
	Identifier     string      `json:"identifier"`
	PxWid          float64     `json:"pxWid"`
	PxHei          float64     `json:"pxHei"`
	LayerInstances []ldtkLayer `json:"layerInstances"`
}

type ldtkLayer struct {
	Identifier      string       `json:"__identifier"`
	Type            string       `json:"__type"`
	GridSize        int          `json:"__gridSize"`
	CWid            int          `json:"__cWid"`
	CHei            int          `json:"__cHei"`
	IntGridCsv      []int        `json:"intGridCsv"`
	EntityInstances []ldtkEntity `json:"entityInstances"`
}

type ldtkEntity struct {
	Identifier string     `json:"__identifier"`
	Px         [2]float64 `json:"px"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Pivot      [2]float64 `json:"__pivot"`
}

const (
	layerEntities = "Entities"
	layerIntGrid  = "IntGrid"
)

// LoadFile reads an LDtk project from disk and converts the named level.
// An empty identifier selects the first level.
func LoadFile(path, identifier string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Parse(f, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to load level file %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes an LDtk project and converts the named level into spawns.
// LDtk pixel coordinates grow downwards from the top-left corner; spawns
// use y-up world coordinates with the origin at the level's bottom-left.
// Non-zero IntGrid cells become walls, merged into horizontal runs.
// Entity identifiers that do not name an entity kind are ignored.
func Parse(r io.Reader, identifier string) (*Level, error) {
	var project ldtkProject
	if err := json.NewDecoder(r).Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to parse LDtk project: %w", err)
	}

	src, err := project.find(identifier)
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		Name: src.Identifier,
		Bounds: physics.NewRect(
			physics.Vector2D{X: src.PxWid / 2, Y: src.PxHei / 2},
			physics.Vector2D{X: src.PxWid, Y: src.PxHei},
		),
	}

	for _, layer := range src.LayerInstances {
		switch layer.Type {
		case layerEntities:
			lvl.Spawns = append(lvl.Spawns, layer.entitySpawns(src.PxHei)...)
		case layerIntGrid:
			walls, err := layer.wallSpawns(src.PxHei)
			if err != nil {
				return nil, fmt.Errorf("level %q layer %q: %w", src.Identifier, layer.Identifier, err)
			}
			lvl.Spawns = append(lvl.Spawns, walls...)
		}
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func (p *ldtkProject) find(identifier string) (*ldtkLevel, error) {
	if len(p.Levels) == 0 {
		return nil, fmt.Errorf("project has no levels: %w", ErrLevelNotFound)
	}
	if identifier == "" {
		return &p.Levels[0], nil
	}
	for i := range p.Levels {
		if p.Levels[i].Identifier == identifier {
			return &p.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", identifier, ErrLevelNotFound)
}

func (l *ldtkLayer) entitySpawns(levelHeight float64) []Spawn {
	spawns := make([]Spawn, 0, len(l.EntityInstances))
	for _, e := range l.EntityInstances {
		kind, err := entity.ParseKind(e.Identifier)
		if err != nil {
			continue
		}
		// px is the pivot point; shift it to the box center.
		cx := e.Px[0] + (0.5-e.Pivot[0])*e.Width
		cy := e.Px[1] + (0.5-e.Pivot[1])*e.Height
		spawns = append(spawns, Spawn{
			Kind:     kind,
			Position: physics.Vector2D{X: cx, Y: levelHeight - cy},
			Size:     physics.Vector2D{X: e.Width, Y: e.Height},
		})
	}
	return spawns
}

func (l *ldtkLayer) wallSpawns(levelHeight float64) ([]Spawn, error) {
	if l.GridSize <= 0 || l.CWid <= 0 || l.CHei <= 0 {
		return nil, fmt.Errorf("grid %dx%d of size %d: %w", l.CWid, l.CHei, l.GridSize, ErrMalformedGrid)
	}
	if len(l.IntGridCsv) != l.CWid*l.CHei {
		return nil, fmt.Errorf("expected %d cells, got %d: %w", l.CWid*l.CHei, len(l.IntGridCsv), ErrMalformedGrid)
	}

	grid := float64(l.GridSize)
	var walls []Spawn
	emit := func(row, start, end int) {
		width := float64(end-start) * grid
		walls = append(walls, Spawn{
			Kind: entity.KindWall,
			Position: physics.Vector2D{
				X: float64(start)*grid + width/2,
				Y: levelHeight - (float64(row)*grid + grid/2),
			},
			Size: physics.Vector2D{X: width, Y: grid},
		})
	}

	for row := 0; row < l.CHei; row++ {
		start := -1
		for col := 0; col < l.CWid; col++ {
			solid := l.IntGridCsv[row*l.CWid+col] != 0
			switch {
			case solid && start < 0:
				start = col
			case !solid && start >= 0:
				emit(row, start, col)
				start = -1
			}
		}
		if start >= 0 {
			emit(row, start, l.CWid)
		}
	}
	return walls, nil
}
