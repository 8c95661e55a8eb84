package systems

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var (
	bodies = query.NewQuery(filter.Contains(
		components.Transform,
		components.Body,
	))
	colliders = query.NewQuery(filter.Contains(
		components.Transform,
		components.Body,
		components.Collider,
		components.Object,
	))
)

// UpdatePhysics advances every dynamic body by one tick, then detects and
// resolves contacts. Contact changes are published as CollisionEvents and
// consumed by UpdateCatch on the next tick.
func UpdatePhysics(s *Session) {
	dt := s.Delta.Seconds()

	integrateBodies(s.World, dt)
	UpdateObjects(s)

	current := detectContacts(s)
	publishContactChanges(s, current)

	UpdateObjects(s)
}

// integrateBodies applies forces, gravity and damping with semi-implicit
// Euler.
func integrateBodies(w donburi.World, dt float64) {
	gravity := cfg.GravityPixels()

	bodies.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Kind != components.BodyDynamic {
			return
		}
		t := components.Transform.Get(e)
		inv := body.InverseMass()

		body.Velocity.X += body.Force.X * inv * dt
		body.Velocity.Y += (body.Force.Y*inv + gravity*body.GravityScale) * dt

		linear := 1 / (1 + dt*body.LinearDamping)
		body.Velocity.X *= linear
		body.Velocity.Y *= linear
		body.AngularVelocity *= 1 / (1 + dt*body.AngularDamping)

		t.Position.X += body.Velocity.X * dt
		t.Position.Y += body.Velocity.Y * dt
		t.Rotation += body.AngularVelocity * dt
	})
}

// UpdateObjects moves the broad-phase objects of dynamic bodies to their
// transforms.
func UpdateObjects(s *Session) {
	colliders.Each(s.World, func(e *donburi.Entry) {
		if components.Body.Get(e).Kind == components.BodyDynamic {
			factory.SyncObject(e, s.Arena)
		}
	})
}
