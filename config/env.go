package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment overrides
const (
	EnvHalfWidth     = "GRID_SNAKE_HALF_WIDTH"
	EnvSegments      = "GRID_SNAKE_SEGMENTS"
	EnvDirection     = "GRID_SNAKE_DIRECTION"
	EnvMoveInterval  = "GRID_SNAKE_MOVE_INTERVAL"
	EnvFrameInterval = "GRID_SNAKE_FRAME_INTERVAL"
	EnvSeed          = "GRID_SNAKE_SEED"
	EnvAudioEnabled  = "GRID_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume  = "GRID_SNAKE_MASTER_VOLUME" // 0-100
	EnvSampleRate    = "GRID_SNAKE_SAMPLE_RATE"
)

// ApplyEnv overlays set GRID_SNAKE_* variables, a malformed value is an error
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvHalfWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvHalfWidth, err)
		}
		c.Arena.HalfWidth = n
	}

	if v := os.Getenv(EnvSegments); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvSegments, err)
		}
		c.Snake.InitialSegments = n
	}

	if v := os.Getenv(EnvDirection); v != "" {
		c.Snake.Direction = v
	}

	if v := os.Getenv(EnvMoveInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError(EnvMoveInterval, err)
		}
		c.Timing.MoveInterval = d
	}

	if v := os.Getenv(EnvFrameInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError(EnvFrameInterval, err)
		}
		c.Timing.FrameInterval = d
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, err)
		}
		c.Seed = n
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if v := os.Getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvSampleRate, err)
		}
		c.Audio.SampleRate = n
	}

	return nil
}

func envError(name string, err error) error {
	return fmt.Errorf("config: %s: %w", name, err)
}
