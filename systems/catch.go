package systems

import (
	"fmt"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
)

// UpdateCatch drains the collision events from the last physics step and
// resolves every player touching a star.
func UpdateCatch(s *Session) {
	components.CollisionEvents.ProcessEvents(s.World)
}

func (s *Session) onCollision(w donburi.World, ev components.CollisionEvent) {
	if !ev.Started {
		return
	}
	// A star caught earlier this tick is already gone.
	if !w.Valid(ev.A) || !w.Valid(ev.B) {
		return
	}

	player, star := w.Entry(ev.A), w.Entry(ev.B)
	if player.HasComponent(tags.Star) {
		player, star = star, player
	}
	if !player.HasComponent(tags.Player) || !star.HasComponent(tags.Star) {
		return
	}

	s.catchStar(w, player, star)
}

func (s *Session) catchStar(w donburi.World, player, star *donburi.Entry) {
	if !player.HasComponent(components.Player) {
		panic(fmt.Sprintf("catch: player entity %v has no player data", player.Entity()))
	}
	id := components.Player.Get(player).ID

	s.Audio.Play(cfg.SoundBom, cfg.Sound.Volumes[cfg.SoundBom])

	score := s.Scoreboard.Increment(id, cfg.Score.CatchPoints)
	if score >= cfg.Score.WinScore {
		s.Scoreboard.ShowWinnerScreen(id)
	}

	at := components.Transform.Get(star).Position
	factory.DestroyRecursive(w, star)
	factory.CreatePoof(w, at)
}
