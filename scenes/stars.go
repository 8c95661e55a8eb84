package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/systems/device"
	"github.com/automoto/starcatch/systems/draw"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// StarsScene runs one star catching session in the ebiten loop
type StarsScene struct {
	ecs         *ecs.ECS
	session     *systems.Session
	controllers *device.Controllers
	scoreboard  *ui.ScoreboardUI
	once        sync.Once
}

func NewStarsScene(session *systems.Session) *StarsScene {
	return &StarsScene{session: session}
}

func (ss *StarsScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *StarsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *StarsScene) configure() {
	// Preload assets to avoid lag on first use
	device.PreloadAudio()
	assets.PreloadTextures()

	s := ss.session
	ss.controllers = device.NewControllers()
	ss.scoreboard = ui.NewScoreboardUI(s.Scoreboard)

	e := ecs.NewECS(s.World)

	// Device input runs before gameplay so joins and presses land this tick
	e.AddSystem(ss.wrap(ss.controllers.Update))
	e.AddSystem(ss.wrap(device.UpdatePlayerInput))
	e.AddSystem(ss.wrap(device.UpdateDebugToggles))

	for _, system := range systems.Gameplay {
		e.AddSystem(ss.wrap(system))
	}
	for _, system := range systems.Simulation {
		e.AddSystem(ss.wrap(system))
	}

	e.AddSystem(ss.wrap(device.UpdateAudio))
	e.AddSystem(func(*ecs.ECS) { ss.scoreboard.Update() })

	// Add renderers
	e.AddRenderer(layerDefault, ss.wrapDraw(draw.DrawBackground))
	e.AddRenderer(layerDefault, ss.wrapDraw(draw.DrawParticles))
	e.AddRenderer(layerDefault, ss.wrapDraw(draw.DrawSprites))
	e.AddRenderer(layerDefault, ss.wrapDraw(draw.DrawColliders))
	e.AddRenderer(layerDefault, ss.wrapDraw(draw.DrawJoinHint))
	e.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) { ss.scoreboard.Draw(screen) })
	e.AddRenderer(layerDefault, ss.wrapDraw(draw.DrawInspector))

	factory.CreateCamera(s.World)
	factory.CreateBackground(s.World)

	ss.ecs = e
}

// wrap adapts a session system to the ecs scheduler
func (ss *StarsScene) wrap(system func(*systems.Session)) ecs.System {
	return func(*ecs.ECS) {
		system(ss.session)
	}
}

func (ss *StarsScene) wrapDraw(renderer func(*systems.Session, *ebiten.Image)) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		renderer(ss.session, screen)
	}
}
