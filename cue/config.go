package cue

import (
	"os"
	"strconv"
)

// Config controls audible feedback
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns the built-in cue settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// LoadConfig applies environment overrides to the defaults
//
//	SIB_CUE_ENABLED  bool
//	SIB_CUE_VOLUME   0-100
//	SIB_SAMPLE_RATE  Hz
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SIB_CUE_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("SIB_CUE_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("SIB_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
