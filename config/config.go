package config

import (
	"image/color"
	"time"
)

// TextureID names a procedurally generated texture
type TextureID string

const (
	TextureFerris     TextureID = "ferris"
	TextureStar       TextureID = "star"
	TextureBackground TextureID = "starry-field"
)

// ArenaConfig describes the play field and its broad-phase grid
type ArenaConfig struct {
	MapPath     string  // TMX path inside the embedded arena FS
	CellSize    int     // resolv cell size in pixels
	SpaceMargin float64 // extra broad-phase area around the map (pixels)
}

// StarConfig contains star spawning and cleanup values
type StarConfig struct {
	SpawnMin time.Duration
	SpawnMax time.Duration

	SpawnXMin float64
	SpawnXMax float64
	SpawnY    float64

	VelocityXMin float64
	VelocityXMax float64
	VelocityYMin float64
	VelocityYMax float64
	SpinMin      float64 // rad/s
	SpinMax      float64

	Radius   float64
	CleanupY float64 // stars below this height are removed
	Z        float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	NameFormat string

	SpawnXMin float64
	SpawnXMax float64
	SpawnY    float64
	Z         float64

	// Body
	LinearDamping  float64
	AngularDamping float64
	Restitution    float64
	Radius         float64
	Mass           float64

	// Movement
	RunForce  float64
	JumpSpeed float64
	GroundedY float64 // jumps are only accepted below this height
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	PixelsPerMeter      float64
	Gravity             float64 // m/s^2, negative is down
	BoundaryRestitution float64
	CorrectionPercent   float64 // positional correction share per step
	CorrectionSlop      float64 // penetration allowed before correcting
	RestingSpeed        float64 // impacts slower than this (px/s) do not bounce
}

// ScoreConfig contains scoring and win condition values
type ScoreConfig struct {
	CatchPoints      int
	WinScore         int
	WinnerFadeSecond float32
}

// EmitterConfig describes one particle effect
type EmitterConfig struct {
	Rate     float64 // particles per second, 0 for burst-only
	Burst    int     // particles emitted on the first update
	Lifetime time.Duration
	SpeedMin float64
	SpeedMax float64
	Size     float64
	Color    color.RGBA
}

// ParticleConfig contains the trail and poof effects
type ParticleConfig struct {
	Trail        EmitterConfig
	Poof         EmitterConfig
	PoofLifetime time.Duration
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	ScoreFontSize  float64
	WinnerFontSize float64
	HintFontSize   float64
	HintColor      color.RGBA
	OverlayColor   color.RGBA
	ScorePanelBg   color.RGBA
	JoinHint       string
	WinnerFormat   string
	BackgroundZoom float64
}

// PlayerColor is a named color assigned to players by controller id
type PlayerColor struct {
	Name string
	RGBA color.RGBA
}

// PlayerColorConfig holds the palette cycled through by controller id
type PlayerColorConfig struct {
	Colors []PlayerColor
}

// Index returns the color for a controller id, wrapping around the palette.
func (p PlayerColorConfig) Index(id int) color.RGBA {
	n := len(p.Colors)
	i := id % n
	if i < 0 {
		i += n
	}
	return p.Colors[i].RGBA
}

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	TPS        int
	Title      string
	Seed       int64 // 0 seeds from the clock
	Fullscreen bool
}

// DebugConfig contains debug overlay toggles
type DebugConfig struct {
	Inspector bool // entity/score inspector overlay
	Colliders bool // collider outlines
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Star StarConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Score ScoreConfig
var Particles ParticleConfig
var UI UIConfig
var Debug DebugConfig
var PlayerColors PlayerColorConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 80, A: 255}
	PaleYellow   = color.RGBA{R: 255, G: 250, B: 200, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Delta is the fixed simulation step derived from C.TPS.
func Delta() time.Duration {
	return time.Second / time.Duration(C.TPS)
}

// GravityPixels is the gravity acceleration in pixels per second squared.
func GravityPixels() float64 {
	return Physics.Gravity * Physics.PixelsPerMeter
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Star Catch",
	}

	Arena = ArenaConfig{
		MapPath:     "maps/arena.tmx",
		CellSize:    32,
		SpaceMargin: 160,
	}

	Star = StarConfig{
		SpawnMin: 200 * time.Millisecond,
		SpawnMax: 2 * time.Second,

		SpawnXMin: -400,
		SpawnXMax: 400,
		SpawnY:    350,

		VelocityXMin: -75,
		VelocityXMax: 75,
		VelocityYMin: -300,
		VelocityYMax: -100,
		SpinMin:      -1.2,
		SpinMax:      1.2,

		Radius:   28,
		CleanupY: -400,
		Z:        1,
	}

	Player = PlayerConfig{
		NameFormat: "Ferris%d",

		SpawnXMin: -600,
		SpawnXMax: 600,
		SpawnY:    -250,
		Z:         2,

		LinearDamping:  3.0,
		AngularDamping: 0,
		Restitution:    1.5,
		Radius:         28,
		Mass:           1,

		RunForce:  1000,
		JumpSpeed: 1250,
		GroundedY: -315,
	}

	Physics = PhysicsConfig{
		PixelsPerMeter:      200,
		Gravity:             -9.81,
		BoundaryRestitution: 0,
		CorrectionPercent:   0.8,
		CorrectionSlop:      0.5,
		RestingSpeed:        70,
	}

	Score = ScoreConfig{
		CatchPoints:      1,
		WinScore:         5,
		WinnerFadeSecond: 0.6,
	}

	Particles = ParticleConfig{
		Trail: EmitterConfig{
			Rate:     60,
			Lifetime: 500 * time.Millisecond,
			SpeedMin: 5,
			SpeedMax: 30,
			Size:     3,
			Color:    Gold,
		},
		Poof: EmitterConfig{
			Burst:    24,
			Lifetime: 600 * time.Millisecond,
			SpeedMin: 80,
			SpeedMax: 220,
			Size:     4,
			Color:    PaleYellow,
		},
		PoofLifetime: 700 * time.Millisecond,
	}

	UI = UIConfig{
		ScoreFontSize:  18,
		WinnerFontSize: 48,
		HintFontSize:   16,
		HintColor:      color.RGBA{R: 200, G: 200, B: 230, A: 255},
		OverlayColor:   BlackOverlay,
		ScorePanelBg:   color.RGBA{R: 0, G: 0, B: 0, A: 120},
		JoinHint:       "Press A on a controller (or Enter on the keyboard) to join",
		WinnerFormat:   "%s wins!",
		BackgroundZoom: 0.7,
	}

	Debug = DebugConfig{}

	PlayerColors = PlayerColorConfig{
		Colors: []PlayerColor{
			{Name: "Orange", RGBA: color.RGBA{R: 247, G: 76, B: 0, A: 255}},
			{Name: "Blue", RGBA: color.RGBA{R: 60, G: 140, B: 255, A: 255}},
			{Name: "Green", RGBA: color.RGBA{R: 70, G: 220, B: 90, A: 255}},
			{Name: "Purple", RGBA: color.RGBA{R: 170, G: 90, B: 255, A: 255}},
			{Name: "Pink", RGBA: color.RGBA{R: 255, G: 110, B: 200, A: 255}},
			{Name: "Cyan", RGBA: color.RGBA{R: 60, G: 230, B: 230, A: 255}},
			{Name: "Yellow", RGBA: color.RGBA{R: 240, G: 230, B: 60, A: 255}},
			{Name: "White", RGBA: color.RGBA{R: 240, G: 240, B: 240, A: 255}},
		},
	}
}
