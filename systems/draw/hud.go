package draw

import (
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/fonts"
	"github.com/automoto/starcatch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui owns the text/v2 faces
)

const hintMargin = 24

// DrawJoinHint prints how to join along the bottom of the screen until the
// first player arrives.
func DrawJoinHint(s *systems.Session, screen *ebiten.Image) {
	if s.Scoreboard.Len() > 0 {
		return
	}
	face := fonts.Hint.Get()
	bounds := text.BoundString(face, cfg.UI.JoinHint)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() - hintMargin
	text.Draw(screen, cfg.UI.JoinHint, face, x, y, cfg.UI.HintColor)
}
