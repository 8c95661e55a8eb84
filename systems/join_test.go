package systems

import (
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
)

func TestJoinSpawnsPlayer(t *testing.T) {
	s := newTestSession(t, 0.75)

	p := join(t, s, 3)

	data := components.Player.Get(p)
	if data.ID != 3 || data.Name != "Ferris3" {
		t.Errorf("player = %+v, want id 3 named Ferris3", data)
	}

	tr := components.Transform.Get(p)
	if tr.Position.X != 300 || tr.Position.Y != -250 {
		t.Errorf("position = (%v,%v), want (300,-250)", tr.Position.X, tr.Position.Y)
	}

	body := components.Body.Get(p)
	if body.LinearDamping != 3 || body.AngularDamping != 0 || body.Restitution != 1.5 || body.Mass != 1 {
		t.Errorf("body = %+v", body)
	}
	if body.Velocity.X != 0 || body.Velocity.Y != 0 || body.Force.X != 0 || body.Force.Y != 0 {
		t.Errorf("body not at rest: %+v", body)
	}
	if col := components.Collider.Get(p); col.Shape != components.ShapeCircle || col.Radius != 28 || col.Sensor {
		t.Errorf("collider = %+v", col)
	}

	m := components.PlayerInput.Get(p).Map
	if m.ControllerID != 3 || m.Jump != cfg.ButtonSouth || m.Run != cfg.AxisLeftX || m.RunDeadzone != 0.1 {
		t.Errorf("input map = %+v", m)
	}

	if got := s.Scoreboard.Score(3); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
	entry := s.Scoreboard.Entries()[0]
	if entry.Color != cfg.PlayerColors.Index(3) || entry.Name != "Ferris3" {
		t.Errorf("scoreboard entry = %+v", entry)
	}
	if components.Sprite.Get(p).Tint != entry.Color {
		t.Error("sprite tint does not match scoreboard color")
	}
}

func TestJoinIgnoresDuplicateAndDisconnect(t *testing.T) {
	s := newTestSession(t, 0.5)
	p := join(t, s, 1)
	s.Scoreboard.Increment(1, 2)

	PublishController(s.World, components.ControllerEvent{ID: 1, Connected: true})
	PublishController(s.World, components.ControllerEvent{ID: 1, Connected: false})
	UpdateJoin(s)

	if n := countTag(s.World, tags.Player); n != 1 {
		t.Fatalf("players = %d, want 1", n)
	}
	if !s.World.Valid(p.Entity()) {
		t.Error("disconnect removed the player")
	}
	if got := s.Scoreboard.Score(1); got != 2 {
		t.Errorf("score = %d, want 2 after duplicate join", got)
	}
}

func TestJoinKnownControllerNeverRespawns(t *testing.T) {
	s := newTestSession(t, 0.5)
	p := join(t, s, 2)
	p.Remove()

	PublishController(s.World, components.ControllerEvent{ID: 2, Connected: true})
	UpdateJoin(s)

	if n := countTag(s.World, tags.Player); n != 0 {
		t.Errorf("players = %d, want 0 for a controller already on the scoreboard", n)
	}
	if n := len(s.Scoreboard.Entries()); n != 1 {
		t.Errorf("scoreboard entries = %d, want 1", n)
	}
}

func TestJoinDrainsEventsOnce(t *testing.T) {
	s := newTestSession(t, 0.5)
	PublishController(s.World, components.ControllerEvent{ID: 4, Connected: true})
	PublishController(s.World, components.ControllerEvent{ID: 5, Connected: true})

	UpdateJoin(s)
	UpdateJoin(s)

	if n := countTag(s.World, tags.Player); n != 2 {
		t.Fatalf("players = %d, want 2", n)
	}
	if s.Scoreboard.Len() != 2 {
		t.Errorf("scoreboard rows = %d, want 2", s.Scoreboard.Len())
	}
}

func TestApplyDeadzone(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.05, 0},
		{0.1, 0},
		{-0.1, 0},
		{0.55, 0.5},
		{-0.55, -0.5},
		{1, 1},
		{-1, -1},
		{1.5, 1},
	}
	for _, tc := range cases {
		got := ApplyDeadzone(tc.in, 0.1)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("ApplyDeadzone(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
