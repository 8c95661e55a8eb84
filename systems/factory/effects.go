package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePoof spawns a one-shot particle burst that removes itself.
func CreatePoof(w donburi.World, pos math.Vec2) *donburi.Entry {
	poof := archetypes.Poof.Spawn(w)

	components.Transform.SetValue(poof, components.TransformData{
		Position: pos,
		Z:        cfg.Player.Z + 1,
	})
	components.Emitter.SetValue(poof, components.EmitterData{
		Config: cfg.Particles.Poof,
	})
	components.AutoDestroy.SetValue(poof, components.AutoDestroyData{
		Remaining: cfg.Particles.PoofLifetime,
	})

	return poof
}
