package archetypes

import (
	"github.com/automoto/starcatch/components"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Transform,
		components.Body,
		components.Collider,
		components.Object,
		components.Sprite,
	)
	Star = newArchetype(
		tags.Star,
		components.Children,
		components.Transform,
		components.Body,
		components.Collider,
		components.Object,
		components.Sprite,
	)
	Trail = newArchetype(
		tags.Trail,
		components.Transform,
		components.Emitter,
	)
	Poof = newArchetype(
		tags.Poof,
		components.Transform,
		components.Emitter,
		components.AutoDestroy,
	)
	Boundary = newArchetype(
		tags.Boundary,
		components.Transform,
		components.Body,
		components.Collider,
		components.Object,
	)
	Background = newArchetype(
		tags.Background,
		components.Transform,
		components.Sprite,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
