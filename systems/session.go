package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/starcatch/arena"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/yohamta/donburi"
)

// Rand is the randomness source used by gameplay. *rand.Rand satisfies it;
// tests supply scripted sequences.
type Rand interface {
	Float64() float64
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Session is the simulation context threaded through every system: the
// world plus the state that outlives any single entity.
type Session struct {
	ID         string
	World      donburi.World
	Arena      *arena.Arena
	Scoreboard *components.ScoreboardData
	StarTimer  *SpawnTimer
	Audio      *components.AudioData

	// Rand drives gameplay draws, FXRand drives cosmetic particles only
	Rand   Rand
	FXRand Rand

	// Delta is the fixed tick length
	Delta time.Duration

	contacts map[contactKey]struct{}
}

// Options configures NewSession.
type Options struct {
	ID     string
	Arena  *arena.Arena
	Rand   Rand
	FXRand Rand // defaults to Rand
}

// NewSession builds a world containing the arena, its broad-phase grid and
// boundary walls, and subscribes the join and catch handlers to the world's
// event queues.
func NewSession(opts Options) (*Session, error) {
	if opts.Arena == nil {
		return nil, fmt.Errorf("new session: no arena")
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("new session: no random source")
	}
	if opts.FXRand == nil {
		opts.FXRand = opts.Rand
	}

	s := &Session{
		ID:         opts.ID,
		World:      donburi.NewWorld(),
		Arena:      opts.Arena,
		Scoreboard: components.NewScoreboard(cfg.Score.WinnerFadeSecond),
		StarTimer:  NewSpawnTimer(0),
		Audio:      &components.AudioData{},
		Rand:       opts.Rand,
		FXRand:     opts.FXRand,
		Delta:      cfg.Delta(),
		contacts:   make(map[contactKey]struct{}),
	}

	factory.CreateSpace(s.World, s.Arena, cfg.Arena.CellSize)
	factory.CreateArena(s.World, s.Arena)
	factory.CreateBoundaries(s.World, s.Arena)

	components.ControllerEvents.Subscribe(s.World, s.onController)
	components.CollisionEvents.Subscribe(s.World, s.onCollision)

	s.Scoreboard.OnWinner = func(e components.ScoreEntry) {
		s.Logf("%s wins with %d points", e.Name, e.Score)
	}

	return s, nil
}

// Logf logs a line tagged with the session id.
func (s *Session) Logf(format string, args ...any) {
	if s.ID == "" {
		log.Printf(format, args...)
		return
	}
	log.Printf("[%s] "+format, append([]any{s.ID}, args...)...)
}
