package systems

import (
	"math"

	"github.com/automoto/starcatch/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEffects runs the particle emitters and removes expired effects.
func UpdateEffects(s *Session) {
	UpdateParticles(s)
	UpdateAutoDestroy(s)
}

// UpdateParticles ages, moves and emits particles for every emitter. Trail
// emitters follow their star while it lives.
func UpdateParticles(s *Session) {
	dt := s.Delta.Seconds()

	components.Emitter.Each(s.World, func(e *donburi.Entry) {
		emitter := components.Emitter.Get(e)
		t := components.Transform.Get(e)

		if emitter.Follows && s.World.Valid(emitter.Follow) {
			t.Position = components.Transform.Get(s.World.Entry(emitter.Follow)).Position
		}

		alive := emitter.Particles[:0]
		for _, p := range emitter.Particles {
			p.Life -= dt
			if p.Life <= 0 {
				continue
			}
			p.Position.X += p.Velocity.X * dt
			p.Position.Y += p.Velocity.Y * dt
			alive = append(alive, p)
		}
		emitter.Particles = alive

		if !emitter.BurstDone {
			for i := 0; i < emitter.Config.Burst; i++ {
				emitParticle(s, emitter, t.Position)
			}
			emitter.BurstDone = true
		}

		if emitter.Config.Rate > 0 {
			emitter.Accumulator += emitter.Config.Rate * dt
			for emitter.Accumulator >= 1 {
				emitParticle(s, emitter, t.Position)
				emitter.Accumulator--
			}
		}
	})
}

func emitParticle(s *Session, emitter *components.EmitterData, at dmath.Vec2) {
	angle := s.FXRand.Float64() * 2 * math.Pi
	speed := uniform(s.FXRand, emitter.Config.SpeedMin, emitter.Config.SpeedMax)
	life := emitter.Config.Lifetime.Seconds()

	emitter.Particles = append(emitter.Particles, components.Particle{
		Position: at,
		Velocity: dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed),
		Life:     life,
		MaxLife:  life,
	})
}

// UpdateAutoDestroy removes entities whose lifetime has elapsed.
func UpdateAutoDestroy(s *Session) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(s.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= s.Delta
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
