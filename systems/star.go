package systems

import (
	"time"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateStarSpawner advances the spawn timer and, when it fires, rearms it
// with a fresh random duration and drops a new star from the top.
func UpdateStarSpawner(s *Session) {
	if !s.StarTimer.Tick(s.Delta) {
		return
	}

	next := uniform(s.Rand, float64(cfg.Star.SpawnMin), float64(cfg.Star.SpawnMax))
	s.StarTimer.Reset(time.Duration(next))

	s.Audio.Play(cfg.SoundBling, cfg.Sound.Volumes[cfg.SoundBling])

	x := uniform(s.Rand, cfg.Star.SpawnXMin, cfg.Star.SpawnXMax)
	vx := uniform(s.Rand, cfg.Star.VelocityXMin, cfg.Star.VelocityXMax)
	vy := uniform(s.Rand, cfg.Star.VelocityYMin, cfg.Star.VelocityYMax)
	spin := uniform(s.Rand, cfg.Star.SpinMin, cfg.Star.SpinMax)

	factory.CreateStar(s.World,
		math.NewVec2(x, cfg.Star.SpawnY),
		math.NewVec2(vx, vy),
		spin,
	)
}

// UpdateStarCleanup removes stars that fell below the screen, trails
// included.
func UpdateStarCleanup(s *Session) {
	var fallen []*donburi.Entry
	tags.Star.Each(s.World, func(e *donburi.Entry) {
		if components.Transform.Get(e).Position.Y < cfg.Star.CleanupY {
			fallen = append(fallen, e)
		}
	})
	for _, e := range fallen {
		factory.DestroyRecursive(s.World, e)
	}
}
