package systems

import (
	"fmt"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateJoin drains the controller events published since the last tick.
// Each connect spawns a player; disconnects are ignored.
func UpdateJoin(s *Session) {
	components.ControllerEvents.ProcessEvents(s.World)
}

// PublishController queues a controller event for the next UpdateJoin.
func PublishController(w donburi.World, ev components.ControllerEvent) {
	components.ControllerEvents.Publish(w, ev)
}

func (s *Session) onController(w donburi.World, ev components.ControllerEvent) {
	if !ev.Connected {
		s.Logf("Controller %d disconnected, keeping its player", ev.ID)
		return
	}
	// Scoreboard entries outlive their players, so a known id never respawns.
	if s.Scoreboard.Has(ev.ID) {
		s.Logf("Controller %d already has a player, ignoring join", ev.ID)
		return
	}

	name := fmt.Sprintf(cfg.Player.NameFormat, ev.ID)
	color := cfg.PlayerColors.Index(ev.ID)
	s.Scoreboard.AddPlayer(ev.ID, name, color)

	x := uniform(s.Rand, cfg.Player.SpawnXMin, cfg.Player.SpawnXMax)
	factory.CreatePlayer(w, ev.ID, name, color, x, DefaultInputMap(ev.ID, ev.Keyboard))

	s.Logf("%s joined (controller %d)", name, ev.ID)
}
