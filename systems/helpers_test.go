package systems

import (
	"testing"
	"time"

	"github.com/automoto/starcatch/arena"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// scriptedRand replays a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func newTestSession(t *testing.T, values ...float64) *Session {
	t.Helper()
	a, err := arena.LoadEmbedded(cfg.Arena.MapPath, cfg.Arena.SpaceMargin)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}
	s, err := NewSession(Options{
		Arena:  a,
		Rand:   &scriptedRand{values: values},
		FXRand: &scriptedRand{values: []float64{0.25, 0.5, 0.75}},
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// pauseSpawner keeps the spawner quiet so tests control every star.
func pauseSpawner(s *Session) {
	s.StarTimer = NewSpawnTimer(time.Hour)
}

func join(t *testing.T, s *Session, id int) *donburi.Entry {
	t.Helper()
	PublishController(s.World, components.ControllerEvent{ID: id, Connected: true})
	UpdateJoin(s)
	p := playerFor(s.World, id)
	if p == nil {
		t.Fatalf("controller %d did not spawn a player", id)
	}
	return p
}

func countTag(w donburi.World, tag donburi.IComponentType) int {
	return query.NewQuery(filter.Contains(tag)).Count(w)
}

func spawnStarAt(s *Session, x, y float64) *donburi.Entry {
	return factory.CreateStar(s.World, math.NewVec2(x, y), math.NewVec2(0, 0), 0)
}

// playerFor returns the live player bound to a controller id, or nil.
func playerFor(w donburi.World, id int) *donburi.Entry {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found
}
