package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
)

func TestStarSpawnerFiresOnFirstTick(t *testing.T) {
	s := newTestSession(t, 0)

	UpdateStarSpawner(s)

	if n := countTag(s.World, tags.Star); n != 1 {
		t.Fatalf("stars = %d, want 1", n)
	}
	if n := countTag(s.World, tags.Trail); n != 1 {
		t.Fatalf("trails = %d, want 1", n)
	}
	if s.StarTimer.Duration != cfg.Star.SpawnMin {
		t.Errorf("next duration = %v, want %v", s.StarTimer.Duration, cfg.Star.SpawnMin)
	}

	pending := s.Audio.Drain()
	if len(pending) != 1 || pending[0].ID != cfg.SoundBling || pending[0].Volume != 0.25 {
		t.Errorf("queued audio = %+v, want one bling at 0.25", pending)
	}
}

func TestStarSpawnerUsesDrawsInOrder(t *testing.T) {
	// duration, x, vx, vy, spin
	s := newTestSession(t, 0.5, 0, 1, 0.5, 0.25)

	UpdateStarSpawner(s)

	star, ok := tags.Star.First(s.World)
	if !ok {
		t.Fatal("no star spawned")
	}
	tr := components.Transform.Get(star)
	body := components.Body.Get(star)
	col := components.Collider.Get(star)

	if s.StarTimer.Duration != 1100*time.Millisecond {
		t.Errorf("duration = %v, want 1.1s", s.StarTimer.Duration)
	}
	if tr.Position.X != -400 || tr.Position.Y != 350 {
		t.Errorf("position = (%v,%v), want (-400,350)", tr.Position.X, tr.Position.Y)
	}
	if body.Velocity.X != 75 || body.Velocity.Y != -200 {
		t.Errorf("velocity = (%v,%v), want (75,-200)", body.Velocity.X, body.Velocity.Y)
	}
	if body.AngularVelocity != -0.6 {
		t.Errorf("spin = %v, want -0.6", body.AngularVelocity)
	}
	if body.GravityScale != 0 {
		t.Errorf("gravity scale = %v, want 0", body.GravityScale)
	}
	if !col.Sensor || !col.ActiveEvents || col.Radius != 28 {
		t.Errorf("collider = %+v, want sensor with events and radius 28", col)
	}
}

func TestStarSpawnerRedrawsWithinRange(t *testing.T) {
	a := newTestSession(t).Arena
	s, err := NewSession(Options{Arena: a, Rand: rand.New(rand.NewSource(42))})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	fired := 0
	for i := 0; i < 3000; i++ {
		UpdateStarSpawner(s)
		if !s.StarTimer.JustFired() {
			continue
		}
		fired++
		d := s.StarTimer.Duration
		if d < cfg.Star.SpawnMin || d >= cfg.Star.SpawnMax {
			t.Fatalf("redrawn duration %v outside [%v, %v)", d, cfg.Star.SpawnMin, cfg.Star.SpawnMax)
		}
	}
	if fired < 2 {
		t.Fatalf("spawner fired %d times in 3000 ticks", fired)
	}

	tags.Star.Each(s.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		body := components.Body.Get(e)
		if tr.Position.X < -400 || tr.Position.X >= 400 {
			t.Errorf("star x %v out of range", tr.Position.X)
		}
		if body.Velocity.X < -75 || body.Velocity.X >= 75 {
			t.Errorf("star vx %v out of range", body.Velocity.X)
		}
		if body.Velocity.Y < -300 || body.Velocity.Y >= -100 {
			t.Errorf("star vy %v out of range", body.Velocity.Y)
		}
		if body.AngularVelocity < -1.2 || body.AngularVelocity >= 1.2 {
			t.Errorf("star spin %v out of range", body.AngularVelocity)
		}
	})
}

func TestStarCleanupRemovesFallenStars(t *testing.T) {
	s := newTestSession(t)
	pauseSpawner(s)

	fallen := spawnStarAt(s, 0, -401)
	kept := spawnStarAt(s, 100, -399)
	fallenID, keptID := fallen.Entity(), kept.Entity()
	fallenObj := components.Object.Get(fallen).Object

	UpdateStarCleanup(s)

	if s.World.Valid(fallenID) {
		t.Error("star below -400 survived cleanup")
	}
	if !s.World.Valid(keptID) {
		t.Error("star above -400 was removed")
	}
	if n := countTag(s.World, tags.Trail); n != 1 {
		t.Errorf("trails = %d, want 1 (the fallen star's trail goes with it)", n)
	}
	if fallenObj.Space != nil {
		t.Error("fallen star is still in the broad phase")
	}
}
