// Package arena loads the play field from a Tiled map: its size and the
// static boundary walls that keep players on screen.
package arena

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed maps
var mapsFS embed.FS

// BoundaryGroup is the object group holding the solid boundary rectangles
const BoundaryGroup = "Boundaries"

// Rect is an axis-aligned rectangle in world space (origin at the map
// center, +Y up).
type Rect struct {
	Name       string
	CenterX    float64
	CenterY    float64
	HalfWidth  float64
	HalfHeight float64
}

// Arena is a loaded play field.
type Arena struct {
	Width      float64
	Height     float64
	Margin     float64 // broad-phase area kept around the map on every side
	Boundaries []Rect
}

// Load parses a TMX map from fsys. The map's pixel size becomes the arena size
// and every object in the Boundaries group becomes a boundary rectangle.
func Load(fsys fs.FS, tmxPath string, margin float64) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
		Margin: margin,
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, fmt.Errorf("TMX %s: empty map", tmxPath)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != BoundaryGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("TMX %s: boundary %q has no area", tmxPath, o.Name)
			}
			cx, cy := a.FromMap(o.X+o.Width/2, o.Y+o.Height/2)
			a.Boundaries = append(a.Boundaries, Rect{
				Name:       o.Name,
				CenterX:    cx,
				CenterY:    cy,
				HalfWidth:  o.Width / 2,
				HalfHeight: o.Height / 2,
			})
		}
	}

	return a, nil
}

// LoadEmbedded loads a map bundled with the binary, e.g. "maps/arena.tmx".
func LoadEmbedded(tmxPath string, margin float64) (*Arena, error) {
	return Load(mapsFS, tmxPath, margin)
}

// FromMap converts Tiled map coordinates (origin top-left, +Y down) to world
// coordinates.
func (a *Arena) FromMap(x, y float64) (float64, float64) {
	return x - a.Width/2, a.Height/2 - y
}

// SpaceSize returns the size of the broad-phase grid in pixels.
func (a *Arena) SpaceSize() (int, int) {
	return int(a.Width + 2*a.Margin), int(a.Height + 2*a.Margin)
}

// ToSpace converts a world point to broad-phase coordinates (origin top-left
// of the grid, +Y down).
func (a *Arena) ToSpace(x, y float64) (float64, float64) {
	return x + a.Width/2 + a.Margin, a.Height/2 + a.Margin - y
}

// FromSpace is the inverse of ToSpace.
func (a *Arena) FromSpace(x, y float64) (float64, float64) {
	return x - a.Width/2 - a.Margin, a.Height/2 + a.Margin - y
}
