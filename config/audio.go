package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBowDraw
	SoundArrowRelease
	SoundTargetHit
	SoundWallThud
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	StartHz float64 // frequency at the start of the sweep
	EndHz   float64 // frequency at the end of the sweep
	Seconds float64
	Decay   float64 // exponential decay rate per second
	Noise   float64 // 0..1 mix of white noise
	Volume  float64 // multiplier on the SFX volume
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundBowDraw:      {StartHz: 180, EndHz: 260, Seconds: 0.25, Decay: 4, Noise: 0.2, Volume: 0.4},
			SoundArrowRelease: {StartHz: 520, EndHz: 140, Seconds: 0.18, Decay: 14, Noise: 0.35, Volume: 0.8},
			SoundTargetHit:    {StartHz: 320, EndHz: 300, Seconds: 0.22, Decay: 18, Noise: 0.5, Volume: 1.0},
			SoundWallThud:     {StartHz: 110, EndHz: 70, Seconds: 0.15, Decay: 25, Noise: 0.6, Volume: 0.7},
			SoundMenuSelect:   {StartHz: 660, EndHz: 880, Seconds: 0.08, Decay: 20, Volume: 0.5},
		},
	}
}
