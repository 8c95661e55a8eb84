package factory

import (
	"github.com/automoto/starcatch/components"
	"github.com/yohamta/donburi"
)

// DestroyRecursive removes an entity and all its descendants, taking every
// broad-phase object out of the space on the way.
func DestroyRecursive(w donburi.World, entry *donburi.Entry) {
	if entry.HasComponent(components.Children) {
		children := components.Children.Get(entry).Entities
		for _, child := range children {
			if w.Valid(child) {
				DestroyRecursive(w, w.Entry(child))
			}
		}
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
