package components

import (
	cfg "github.com/automoto/starcatch/config"
)

// SFXRequest is one fire-and-forget sound cue
type SFXRequest struct {
	ID     cfg.SoundID
	Volume float64 // 0.0 - 1.0
}

// AudioData queues cues requested by gameplay until the device layer plays
// them at the end of the tick.
type AudioData struct {
	PendingSFX []SFXRequest
}

// Play queues a cue.
func (a *AudioData) Play(id cfg.SoundID, volume float64) {
	a.PendingSFX = append(a.PendingSFX, SFXRequest{ID: id, Volume: volume})
}

// Drain returns the queued cues and empties the queue.
func (a *AudioData) Drain() []SFXRequest {
	pending := a.PendingSFX
	a.PendingSFX = nil
	return pending
}
