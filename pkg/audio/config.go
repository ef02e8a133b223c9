// pkg/audio/config.go
package audio

import (
	"os"
	"strconv"
)

// SoundType identifies a synthesised sound effect
type SoundType int

const (
	SoundFootstep SoundType = iota
	SoundShot
	SoundImpact
	SoundHit
	SoundComplete
)

// Environment variables read by LoadConfig
const (
	EnvAudioEnabled = "PURSUIT_AUDIO_ENABLED"
	EnvMasterVolume = "PURSUIT_MASTER_VOLUME"
)

// Config holds mixer settings
type Config struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns audio settings tuned for the game's effects
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.6,
		EffectVolumes: map[SoundType]float64{
			SoundFootstep: 0.35,
			SoundShot:     0.6,
			SoundImpact:   0.5,
			SoundHit:      0.9,
			SoundComplete: 0.8,
		},
	}
}

// LoadConfig starts from DefaultConfig and applies environment overrides.
// Malformed values are ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 on the command line, 0-1 internally
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}
