package factory

import (
	"github.com/automoto/starcatch/arena"
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the broad-phase grid covering the arena plus its margin.
func CreateSpace(w donburi.World, a *arena.Arena, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	width, height := a.SpaceSize()
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellSize, cellSize),
	})
	return space
}

// MustSpace returns the singleton broad-phase grid and the arena it covers.
func MustSpace(w donburi.World) (*resolv.Space, *arena.Arena) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		panic("factory: world has no space")
	}
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		panic("factory: world has no arena")
	}
	return components.Space.Get(spaceEntry).Space, components.Arena.Get(arenaEntry).Arena
}

// attachObject creates the entry's broad-phase object from its transform and
// collider and adds it to the space.
func attachObject(w donburi.World, entry *donburi.Entry, resolvTags ...string) *resolv.Object {
	space, a := MustSpace(w)
	collider := components.Collider.Get(entry)
	ex, ey := collider.Extents()

	obj := resolv.NewObject(0, 0, ex*2, ey*2, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, ex*2, ey*2))
	obj.Data = entry.Entity()
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	placeObject(obj, components.Transform.Get(entry), ex, ey, a)
	space.Add(obj)
	return obj
}

// SyncObject moves the entry's broad-phase object to its transform.
func SyncObject(entry *donburi.Entry, a *arena.Arena) {
	obj := components.Object.Get(entry).Object
	ex, ey := components.Collider.Get(entry).Extents()
	placeObject(obj, components.Transform.Get(entry), ex, ey, a)
	obj.Update()
}

func placeObject(obj *resolv.Object, t *components.TransformData, ex, ey float64, a *arena.Arena) {
	obj.X, obj.Y = a.ToSpace(t.Position.X-ex, t.Position.Y+ey)
}
