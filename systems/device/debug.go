package device

import (
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// UpdateDebugToggles flips the overlays: F1 inspector, F2 collider outlines.
func UpdateDebugToggles(s *systems.Session) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Inspector = !cfg.Debug.Inspector
		s.Logf("Inspector %v", cfg.Debug.Inspector)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		cfg.Debug.Colliders = !cfg.Debug.Colliders
		s.Logf("Collider outlines %v", cfg.Debug.Colliders)
	}
}
