package main

import (
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/starcatch/arena"
	"github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/fonts"
	"github.com/automoto/starcatch/scenes"
	"github.com/automoto/starcatch/systems"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(session *systems.Session) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HintFontSize, config.UI.ScoreFontSize, config.UI.WinnerFontSize); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewStarsScene(session),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// Command-line flags. Zero values leave the .env / default settings alone.
var (
	envPath    string
	seed       int64
	winScore   int
	fullscreen bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Couch multiplayer star catching",
	Long:  `Every connected controller spawns a crab. Catch falling stars; the first to five wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		if envPath != "" {
			paths = append(paths, envPath)
		}
		if err := config.LoadEnv(paths...); err != nil {
			return err
		}
		applyFlags(cmd)
		return run()
	},
}

func applyFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("seed") {
		config.C.Seed = seed
	}
	if cmd.Flags().Changed("win-score") {
		config.SetWinScore(int64(winScore), "--win-score")
	}
	if cmd.Flags().Changed("fullscreen") {
		config.C.Fullscreen = fullscreen
	}
	if debug {
		config.Debug.Inspector = true
		config.Debug.Colliders = true
	}
}

func run() error {
	a, err := arena.LoadEmbedded(config.Arena.MapPath, config.Arena.SpaceMargin)
	if err != nil {
		return err
	}

	s := config.C.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	session, err := systems.NewSession(systems.Options{
		ID:     uuid.New().String(),
		Arena:  a,
		Rand:   rand.New(rand.NewSource(s)),
		FXRand: rand.New(rand.NewSource(s + 1)),
	})
	if err != nil {
		return err
	}
	session.Logf("Seed %d, first to %d wins", s, config.Score.WinScore)

	game, err := NewGame(session)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.C.Fullscreen)
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(game)
}

func main() {
	rootCmd.Flags().StringVar(&envPath, "env", "", "Path to a .env file (default ./.env)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for star spawns (0 uses the clock)")
	rootCmd.Flags().IntVar(&winScore, "win-score", 0, "Score needed to win")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Show the inspector and collider outlines")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
