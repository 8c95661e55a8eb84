package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBling        // star spawned
	SoundBom          // star caught
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes one synthesized cue
type ToneConfig struct {
	Frequencies []float64 // mixed sine partials, Hz
	Noise       float64   // share of white noise mixed in (0-1)
	DurationMs  int
	AttackMs    int
	ReleaseMs   int
}

// SoundConfig maps sound IDs to synthesis recipes and playback volumes
type SoundConfig struct {
	Tones   map[SoundID]ToneConfig
	Volumes map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundBling: {
				Frequencies: []float64{1318.5, 1975.5},
				DurationMs:  220,
				AttackMs:    5,
				ReleaseMs:   180,
			},
			SoundBom: {
				Frequencies: []float64{110, 165},
				Noise:       0.35,
				DurationMs:  260,
				AttackMs:    2,
				ReleaseMs:   220,
			},
		},
		Volumes: map[SoundID]float64{
			SoundBling: 0.25,
			SoundBom:   0.25,
		},
	}
}
