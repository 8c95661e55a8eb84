package factory

import (
	"github.com/automoto/starcatch/arena"
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateArena stores the loaded arena and spawns its boundary walls. The
// space must already exist.
func CreateArena(w donburi.World, a *arena.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(entry, components.ArenaData{Arena: a})
	return entry
}

// CreateBoundaries spawns one static wall per arena boundary.
func CreateBoundaries(w donburi.World, a *arena.Arena) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, len(a.Boundaries))
	for _, r := range a.Boundaries {
		walls = append(walls, CreateBoundary(w, r))
	}
	return walls
}

// CreateBoundary spawns a static solid rectangle.
func CreateBoundary(w donburi.World, r arena.Rect) *donburi.Entry {
	wall := archetypes.Boundary.Spawn(w)

	components.Transform.SetValue(wall, components.TransformData{
		Position: math.NewVec2(r.CenterX, r.CenterY),
	})
	components.Body.SetValue(wall, components.BodyData{
		Kind:        components.BodyStatic,
		Restitution: cfg.Physics.BoundaryRestitution,
	})
	components.Collider.SetValue(wall, components.ColliderData{
		Shape:      components.ShapeRect,
		HalfWidth:  r.HalfWidth,
		HalfHeight: r.HalfHeight,
	})
	attachObject(w, wall, tags.ResolvSolid)

	return wall
}
