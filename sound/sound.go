// Package sound synthesizes the game's sound cues and renders them to PCM
// that the ebiten audio player can consume.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/starcatch/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// noiseSeed keeps rendered noise identical between runs
const noiseSeed = 7

// Synthesize builds a streamer for one cue: the sine partials mixed evenly,
// optional white noise, shaped by an attack/release envelope.
func Synthesize(tone cfg.ToneConfig, rate beep.SampleRate) (beep.Streamer, error) {
	if tone.DurationMs <= 0 {
		return nil, fmt.Errorf("tone duration %dms", tone.DurationMs)
	}
	duration := time.Duration(tone.DurationMs) * time.Millisecond

	var parts []beep.Streamer
	partial := 1.0
	if len(tone.Frequencies) > 0 {
		partial = (1 - tone.Noise) / float64(len(tone.Frequencies))
	}
	for _, freq := range tone.Frequencies {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("sine %.1fHz: %w", freq, err)
		}
		parts = append(parts, scaled(sine, partial))
	}
	if tone.Noise > 0 {
		parts = append(parts, scaled(newNoise(noiseSeed), tone.Noise))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("tone has no partials and no noise")
	}

	env := newEnvelope(
		rate.N(duration),
		rate.N(time.Duration(tone.AttackMs)*time.Millisecond),
		rate.N(time.Duration(tone.ReleaseMs)*time.Millisecond),
	)
	return env.apply(beep.Mix(parts...)), nil
}

// Render drains a finite streamer into 16-bit little endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Bank renders every configured cue at the given sample rate.
func Bank(sampleRate int) (map[cfg.SoundID][]byte, error) {
	rate := beep.SampleRate(sampleRate)
	bank := make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))
	for id, tone := range cfg.Sound.Tones {
		s, err := Synthesize(tone, rate)
		if err != nil {
			return nil, fmt.Errorf("synthesize sound %d: %w", id, err)
		}
		bank[id] = Render(s)
	}
	return bank, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}

// scaled multiplies a stream by a linear factor; 0 silences it.
func scaled(s beep.Streamer, factor float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: factor - 1}
}

func newNoise(seed int64) beep.Streamer {
	r := rand.New(rand.NewSource(seed))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := r.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// envelope is a cue's amplitude over time, in samples: a linear rise over
// attack, full level, then a linear fall reaching zero at length.
type envelope struct {
	length, attack, release int
}

// newEnvelope fits attack and release inside length, shortening the release
// first.
func newEnvelope(length, attack, release int) envelope {
	attack = min(attack, length)
	release = min(release, length-attack)
	return envelope{length: length, attack: attack, release: release}
}

func (e envelope) gain(pos int) float64 {
	switch {
	case pos >= e.length:
		return 0
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos >= e.length-e.release:
		return float64(e.length-pos) / float64(e.release)
	}
	return 1
}

// apply shapes s by the envelope and ends the stream after length samples.
func (e envelope) apply(s beep.Streamer) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= e.length {
			return 0, false
		}
		if left := e.length - pos; len(samples) > left {
			samples = samples[:left]
		}
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := e.gain(pos)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}
