// Package arena loads the side-view collision layout the sandbox actor
// moves in.
package arena

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map
const (
	GroupSolids = "Solids"
	GroupSpawn  = "Spawn"
)

// ErrNoSpawn is returned for maps without a spawn point.
var ErrNoSpawn = errors.New("arena has no spawn point")

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// Layout is the collision data of an arena in pixels, y pointing down.
type Layout struct {
	Width  int
	Height int
	Solids []Rect
	Spawn  Point
}

// Load parses a TMX file from fsys.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	spawned := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				layout.Solids = append(layout.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				layout.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawned = true
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	return layout, nil
}

// Flat returns a closed box of the given size with a floor and two walls.
func Flat(width, height int) *Layout {
	w, h := float64(width), float64(height)
	const thick = 16
	return &Layout{
		Width:  width,
		Height: height,
		Solids: []Rect{
			{X: 0, Y: h - thick, W: w, H: thick},
			{X: 0, Y: 0, W: thick, H: h - thick},
			{X: w - thick, Y: 0, W: thick, H: h - thick},
		},
		Spawn: Point{X: w / 4, Y: h - thick},
	}
}
