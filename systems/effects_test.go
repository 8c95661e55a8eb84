package systems

import (
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPoofBurstsThenExpires(t *testing.T) {
	s := newTestSession(t)
	poof := factory.CreatePoof(s.World, dmath.NewVec2(10, 20))

	UpdateEffects(s)
	if n := len(components.Emitter.Get(poof).Particles); n != cfg.Particles.Poof.Burst {
		t.Fatalf("particles = %d, want %d", n, cfg.Particles.Poof.Burst)
	}

	UpdateEffects(s)
	if n := len(components.Emitter.Get(poof).Particles); n != cfg.Particles.Poof.Burst {
		t.Fatalf("burst repeated: particles = %d", n)
	}

	poofID := poof.Entity()
	ticks := int(cfg.Particles.PoofLifetime/s.Delta) + 2
	for i := 0; i < ticks && s.World.Valid(poofID); i++ {
		UpdateEffects(s)
	}
	if s.World.Valid(poofID) {
		t.Fatal("poof was not auto-destroyed")
	}
}

func TestTrailFollowsStar(t *testing.T) {
	s := newTestSession(t)
	star := factory.CreateStar(s.World, dmath.NewVec2(0, 300), dmath.NewVec2(0, -120), 0)
	trail := factory.CreateTrail(s.World, star)

	for i := 0; i < 30; i++ {
		UpdatePhysics(s)
		UpdateParticles(s)
	}

	starPos := components.Transform.Get(star).Position
	trailPos := components.Transform.Get(trail).Position
	if starPos != trailPos {
		t.Errorf("trail at %v, star at %v", trailPos, starPos)
	}

	// 30 ticks at 60/s emit 30 particles; the oldest live 0.5s so none expired.
	if n := len(components.Emitter.Get(trail).Particles); n < 29 || n > 30 {
		t.Errorf("trail particles = %d, want about 30", n)
	}
}
