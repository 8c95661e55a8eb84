package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateStar spawns a falling star with a trail attached as its child.
// Stars ignore gravity and only sense overlaps.
func CreateStar(w donburi.World, pos, vel math.Vec2, spin float64) *donburi.Entry {
	star := archetypes.Star.Spawn(w)

	components.Transform.SetValue(star, components.TransformData{
		Position: pos,
		Z:        cfg.Star.Z,
	})
	components.Body.SetValue(star, components.BodyData{
		Kind:            components.BodyDynamic,
		Velocity:        vel,
		AngularVelocity: spin,
		Mass:            1,
		GravityScale:    0,
	})
	components.Collider.SetValue(star, components.ColliderData{
		Shape:        components.ShapeCircle,
		Radius:       cfg.Star.Radius,
		Sensor:       true,
		ActiveEvents: true,
	})
	components.Sprite.SetValue(star, components.SpriteData{
		Texture: cfg.TextureStar,
		Tint:    cfg.White,
		Scale:   1,
	})
	attachObject(w, star, tags.ResolvSensor)

	CreateTrail(w, star)
	return star
}

// CreateTrail attaches a continuous particle emitter that follows parent and
// is destroyed with it.
func CreateTrail(w donburi.World, parent *donburi.Entry) *donburi.Entry {
	trail := archetypes.Trail.Spawn(w)

	t := components.Transform.Get(parent)
	components.Transform.SetValue(trail, components.TransformData{
		Position: t.Position,
		Z:        t.Z - 0.1,
	})
	components.Emitter.SetValue(trail, components.EmitterData{
		Config:  cfg.Particles.Trail,
		Follows: true,
		Follow:  parent.Entity(),
	})
	if !parent.HasComponent(components.Children) {
		parent.AddComponent(components.Children)
	}
	children := components.Children.Get(parent)
	children.Entities = append(children.Entities, trail.Entity())

	return trail
}
