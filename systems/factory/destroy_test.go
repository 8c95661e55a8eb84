package factory

import (
	"testing"

	"github.com/automoto/starcatch/arena"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	a, err := arena.LoadEmbedded(cfg.Arena.MapPath, cfg.Arena.SpaceMargin)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}
	w := donburi.NewWorld()
	CreateSpace(w, a, cfg.Arena.CellSize)
	CreateArena(w, a)
	return w
}

func TestCreateStarRecordsTrail(t *testing.T) {
	w := newTestWorld(t)
	star := CreateStar(w, math.NewVec2(0, 100), math.NewVec2(0, -100), 0)

	children := components.Children.Get(star).Entities
	if len(children) != 1 {
		t.Fatalf("children = %d, want 1", len(children))
	}
	if !w.Valid(children[0]) || !w.Entry(children[0]).HasComponent(tags.Trail) {
		t.Fatal("star child is not a live trail")
	}
}

func TestDestroyRecursiveRemovesStarAndTrail(t *testing.T) {
	w := newTestWorld(t)
	star := CreateStar(w, math.NewVec2(0, 100), math.NewVec2(0, -100), 0)
	other := CreateStar(w, math.NewVec2(50, 100), math.NewVec2(0, -100), 0)

	starID := star.Entity()
	trailID := components.Children.Get(star).Entities[0]
	otherTrailID := components.Children.Get(other).Entities[0]
	obj := components.Object.Get(star).Object
	space := obj.Space

	DestroyRecursive(w, star)

	if w.Valid(starID) {
		t.Error("star survived")
	}
	if w.Valid(trailID) {
		t.Error("trail survived its star")
	}
	if !w.Valid(other.Entity()) || !w.Valid(otherTrailID) {
		t.Error("unrelated star or trail was removed")
	}
	if obj.Space != nil {
		t.Error("star object still belongs to a space")
	}
	for _, o := range space.Objects() {
		if o == obj {
			t.Fatal("star object still in the space")
		}
	}
}
