package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader holds the rendered PCM of every cue and hands out players
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader renders the sound bank at the context's sample rate.
func NewAudioLoader(ctx *audio.Context) (*AudioLoader, error) {
	bank, err := sound.Bank(ctx.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("render sound bank: %w", err)
	}
	return &AudioLoader{
		sfxCache: bank,
		context:  ctx,
	}, nil
}

// LoadSFX returns a new player for a cue. SFX are cached as PCM, so this
// never decodes.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, ok := l.sfxCache[id]
	if !ok {
		return nil, fmt.Errorf("no sound for id %d", id)
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}
