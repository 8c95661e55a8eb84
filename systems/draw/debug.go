package draw

import (
	"fmt"
	"image/color"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/fonts"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui owns the text/v2 faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var (
	colliderColor = color.RGBA{0, 255, 255, 255}
	solidColor    = color.RGBA{100, 100, 100, 255}
	playerColor   = color.RGBA{0, 0, 255, 255}
	sensorColor   = color.RGBA{255, 215, 0, 255}

	players = query.NewQuery(filter.Contains(tags.Player))
	stars   = query.NewQuery(filter.Contains(tags.Star))
)

// DrawColliders outlines every collider in world space.
func DrawColliders(s *systems.Session, screen *ebiten.Image) {
	if !cfg.Debug.Colliders {
		return
	}
	v := newView(s.World, screen)

	components.Collider.Each(s.World, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		t := components.Transform.Get(e)
		x, y := v.toScreen(t.Position.X, t.Position.Y)

		c := colliderColor
		if e.HasComponent(components.Object) {
			c = objectColor(components.Object.Get(e).Object)
		}

		switch col.Shape {
		case components.ShapeCircle:
			vector.StrokeCircle(screen, float32(x), float32(y), float32(col.Radius*v.zoom), 1, c, true)
		case components.ShapeRect:
			hw, hh := col.HalfWidth*v.zoom, col.HalfHeight*v.zoom
			vector.StrokeRect(screen, float32(x-hw), float32(y-hh), float32(2*hw), float32(2*hh), 1, c, false)
		}
	})
}

// DrawInspector lists the session state in the top-left corner.
func DrawInspector(s *systems.Session, screen *ebiten.Image) {
	if !cfg.Debug.Inspector {
		return
	}
	face := fonts.Debug.Get()

	lines := []string{
		fmt.Sprintf("session %s", s.ID),
		fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("players %d  stars %d", players.Count(s.World), stars.Count(s.World)),
		fmt.Sprintf("next star in %s", systems.TimeToNextStar(s)),
	}
	for _, entry := range s.Scoreboard.Entries() {
		lines = append(lines, fmt.Sprintf("  %s #%d: %d", entry.Name, entry.ID, entry.Score))
	}
	if winner, ok := s.Scoreboard.Winner(); ok {
		lines = append(lines, fmt.Sprintf("winner %s (alpha %.2f)", winner.Name, winner.Alpha))
	}

	vector.FillRect(screen, 8, 8, 260, float32(16*len(lines)+8), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 16, 24+16*i, cfg.White)
	}
}

// objectColor picks an outline color from the broad-phase tags.
func objectColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return solidColor
	case obj.HasTags(tags.ResolvPlayer):
		return playerColor
	case obj.HasTags(tags.ResolvSensor):
		return sensorColor
	}
	return colliderColor
}
