package systems

import (
	"math"
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestStarFallsWithoutGravity(t *testing.T) {
	s := newTestSession(t)
	star := factory.CreateStar(s.World, dmath.NewVec2(0, 350), dmath.NewVec2(30, -200), 1)

	UpdatePhysics(s)

	dt := s.Delta.Seconds()
	tr := components.Transform.Get(star)
	if math.Abs(tr.Position.X-30*dt) > 1e-9 || math.Abs(tr.Position.Y-(350-200*dt)) > 1e-9 {
		t.Errorf("position = (%v,%v)", tr.Position.X, tr.Position.Y)
	}
	if math.Abs(tr.Rotation-dt) > 1e-9 {
		t.Errorf("rotation = %v, want %v", tr.Rotation, dt)
	}
}

func TestPlayerSettlesOnFloorBelowJumpHeight(t *testing.T) {
	s := newTestSession(t, 0.5)
	pauseSpawner(s)
	p := join(t, s, 0)

	for i := 0; i < 240; i++ {
		UpdatePhysics(s)
	}

	tr := components.Transform.Get(p)
	if tr.Position.Y >= cfg.Player.GroundedY {
		t.Errorf("resting y = %v, want below %v", tr.Position.Y, cfg.Player.GroundedY)
	}
	if tr.Position.Y < -360 {
		t.Errorf("player sank through the floor: y = %v", tr.Position.Y)
	}
	if vy := components.Body.Get(p).Velocity.Y; math.Abs(vy) > 40 {
		t.Errorf("player still bouncing: vy = %v", vy)
	}
}

func TestPlayersPushApart(t *testing.T) {
	s := newTestSession(t, 0.5)
	p1 := join(t, s, 0)
	p2 := join(t, s, 1)
	components.Transform.Get(p1).Position = dmath.NewVec2(-10, 0)
	components.Transform.Get(p2).Position = dmath.NewVec2(10, 0)
	components.Body.Get(p1).Velocity = dmath.NewVec2(100, 0)
	components.Body.Get(p2).Velocity = dmath.NewVec2(-100, 0)
	UpdateObjects(s)

	UpdatePhysics(s)

	v1 := components.Body.Get(p1).Velocity.X
	v2 := components.Body.Get(p2).Velocity.X
	if v1 >= 0 || v2 <= 0 {
		t.Errorf("velocities after impact = %v, %v; want separating", v1, v2)
	}
}

func TestSensorOverlapPublishesStartOnce(t *testing.T) {
	s := newTestSession(t, 0.5)
	pauseSpawner(s)
	p := join(t, s, 0)
	components.Body.Get(p).GravityScale = 0
	at := components.Transform.Get(p).Position
	star := factory.CreateStar(s.World, at, dmath.NewVec2(0, 0), 0)

	var started, stopped int
	components.CollisionEvents.Subscribe(s.World, func(_ donburi.World, ev components.CollisionEvent) {
		if ev.Started {
			started++
		} else {
			stopped++
		}
	})

	UpdatePhysics(s)
	UpdatePhysics(s)
	if vx, vy := components.Body.Get(p).Velocity.X, components.Body.Get(p).Velocity.Y; vx != 0 || vy != 0 {
		t.Errorf("sensor pushed the player: v = (%v,%v)", vx, vy)
	}

	components.Transform.Get(star).Position.Y += 200
	UpdatePhysics(s)
	components.CollisionEvents.ProcessEvents(s.World)

	if started != 1 || stopped != 1 {
		t.Errorf("started = %d, stopped = %d; want 1 and 1", started, stopped)
	}
}

func TestOverlappingStarsIgnoreEachOther(t *testing.T) {
	s := newTestSession(t)
	pauseSpawner(s)
	a := factory.CreateStar(s.World, dmath.NewVec2(0, 200), dmath.NewVec2(0, 0), 0)
	b := factory.CreateStar(s.World, dmath.NewVec2(10, 200), dmath.NewVec2(0, 0), 0)

	var events int
	components.CollisionEvents.Subscribe(s.World, func(_ donburi.World, _ components.CollisionEvent) {
		events++
	})

	UpdatePhysics(s)
	components.CollisionEvents.ProcessEvents(s.World)

	if events != 0 {
		t.Errorf("events = %d, want 0 between two stars", events)
	}
	if x := components.Transform.Get(a).Position.X; x != 0 {
		t.Errorf("first star moved to x = %v", x)
	}
	if x := components.Transform.Get(b).Position.X; x != 10 {
		t.Errorf("second star moved to x = %v", x)
	}
}

func TestPhysicsThenCatch(t *testing.T) {
	s := newTestSession(t, 0.5)
	pauseSpawner(s)
	p := join(t, s, 0)
	factory.CreateStar(s.World, components.Transform.Get(p).Position, dmath.NewVec2(0, 0), 0)

	UpdatePhysics(s)
	UpdateCatch(s)

	if got := s.Scoreboard.Score(0); got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
}
