package arena

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedArena(t *testing.T) {
	a, err := LoadEmbedded("maps/arena.tmx", 160)
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if a.Width != 1280 || a.Height != 720 {
		t.Fatalf("size = %vx%v, want 1280x720", a.Width, a.Height)
	}
	if len(a.Boundaries) != 4 {
		t.Fatalf("got %d boundaries, want 4", len(a.Boundaries))
	}

	var floor *Rect
	for i := range a.Boundaries {
		if a.Boundaries[i].Name == "floor" {
			floor = &a.Boundaries[i]
		}
	}
	if floor == nil {
		t.Fatal("no floor boundary")
	}
	if top := floor.CenterY + floor.HalfHeight; top != -360 {
		t.Errorf("floor top = %v, want -360", top)
	}
}

func TestSpaceConversionRoundTrip(t *testing.T) {
	a := &Arena{Width: 1280, Height: 720, Margin: 160}

	sx, sy := a.ToSpace(0, 0)
	if sx != 800 || sy != 520 {
		t.Fatalf("ToSpace(0,0) = (%v,%v), want (800,520)", sx, sy)
	}
	w, h := a.SpaceSize()
	if w != 1600 || h != 1040 {
		t.Fatalf("SpaceSize = %dx%d, want 1600x1040", w, h)
	}

	x, y := a.FromSpace(a.ToSpace(-400, 350))
	if x != -400 || y != 350 {
		t.Errorf("round trip = (%v,%v), want (-400,350)", x, y)
	}
}

func TestLoadRejectsEmptyBoundary(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Boundaries">
  <object id="1" name="point" x="10" y="10"/>
 </objectgroup>
</map>
`)},
	}
	if _, err := Load(fsys, "bad.tmx", 0); err == nil {
		t.Fatal("expected error for zero-area boundary")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.tmx", 0); err == nil {
		t.Fatal("expected error for missing map")
	}
}
