package device

import (
	"log"
	"sync"

	"github.com/automoto/starcatch/assets"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across sessions
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders the sound bank
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		loader, err := assets.NewAudioLoader(globalAudioContext)
		if err != nil {
			log.Printf("Warning: audio disabled: %v", err)
			return
		}
		globalAudioLoader = loader
	})
}

// PreloadAudio renders all cues at startup so the first catch does not stall.
func PreloadAudio() {
	initGlobalAudio()
}

// UpdateAudio plays every cue queued by gameplay this tick.
func UpdateAudio(s *systems.Session) {
	initGlobalAudio()

	for _, req := range s.Audio.Drain() {
		playSFX(req.ID, req.Volume)
	}
}

func playSFX(id cfg.SoundID, volume float64) {
	if globalAudioLoader == nil || globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume * volume)
	player.Play()
}
