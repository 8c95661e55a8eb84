package components

import (
	"time"

	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Particle is one simulated point of an emitter, in world space
type Particle struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     float64 // seconds left
	MaxLife  float64
}

// EmitterData owns a small particle pool. Trails emit continuously from their
// parent's position; poofs emit a single burst.
type EmitterData struct {
	Config      cfg.EmitterConfig
	Follows     bool
	Follow      donburi.Entity // tracked while Follows is set and the entity lives
	Particles   []Particle
	Accumulator float64 // fractional particles carried to the next tick
	BurstDone   bool
}

var Emitter = donburi.NewComponentType[EmitterData]()

// AutoDestroyData marks entities that are removed once their lifetime elapses
type AutoDestroyData struct {
	Remaining time.Duration
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
