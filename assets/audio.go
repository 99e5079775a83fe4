package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/archery/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // 16-bit little-endian stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	l.sfxCache[id] = SynthTone(tone, l.context.SampleRate(), uint64(id))
	return nil
}

// LoadSFX returns a new player for a sound effect.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthTone renders a frequency sweep with exponential decay and an optional noise mix as
// 16-bit little-endian stereo PCM. The same seed gives the same bytes.
func SynthTone(tone config.ToneConfig, sampleRate int, seed uint64) []byte {
	if tone.Seconds <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(tone.Seconds * float64(sampleRate))
	out := make([]byte, n*4)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	noise := math.Max(0, math.Min(1, tone.Noise))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := (1-noise)*math.Sin(phase) + noise*(rng.Float64()*2-1)
		s *= math.Exp(-tone.Decay * t)

		// short fade in avoids a click at the start
		if attack := 0.005; t < attack {
			s *= t / attack
		}

		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
