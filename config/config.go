package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/session"
)

// Config is the full game configuration
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Snake  SnakeConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Seed   uint64       `yaml:"seed"` // 0 = time based
	Audio  AudioConfig  `yaml:"audio"`
}

// ArenaConfig sizes the play field
type ArenaConfig struct {
	HalfWidth int `yaml:"half_width"`
}

// SnakeConfig sets the starting snake
type SnakeConfig struct {
	InitialSegments int    `yaml:"initial_segments"`
	Direction       string `yaml:"direction"`
}

// TimingConfig sets simulation and render cadence
type TimingConfig struct {
	MoveInterval  time.Duration `yaml:"move_interval"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// AudioConfig mirrors audio.AudioConfig with file-friendly fields
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	MasterVolume   float64 `yaml:"master_volume"`
	SampleRate     int     `yaml:"sample_rate"`
	EatenVolume    float64 `yaml:"eaten_volume"`
	GameOverVolume float64 `yaml:"game_over_volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Arena: ArenaConfig{HalfWidth: constants.ArenaHalfWidth},
		Snake: SnakeConfig{
			InitialSegments: constants.InitialSegments,
			Direction:       grid.North.String(),
		},
		Timing: TimingConfig{
			MoveInterval:  constants.MoveInterval,
			FrameInterval: constants.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled:        ac.Enabled,
			MasterVolume:   ac.MasterVolume,
			SampleRate:     ac.SampleRate,
			EatenVolume:    ac.EffectVolumes[audio.SoundEaten],
			GameOverVolume: ac.EffectVolumes[audio.SoundGameOver],
		},
	}
}

// Load builds a config from defaults, the optional YAML file at path, then environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := cfg.Parse(data); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML onto the config, unknown keys are rejected
func (c *Config) Parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// Write encodes the config as YAML
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// Validate checks ranges and reports every problem found
func (c *Config) Validate() error {
	var errs []error

	if c.Arena.HalfWidth < 1 || c.Arena.HalfWidth > constants.MaxArenaHalfWidth {
		errs = append(errs, fmt.Errorf("arena.half_width %d out of range [1, %d]", c.Arena.HalfWidth, constants.MaxArenaHalfWidth))
	}
	if c.Snake.InitialSegments < 1 || c.Snake.InitialSegments > c.Arena.HalfWidth+1 {
		errs = append(errs, fmt.Errorf("snake.initial_segments %d must be in [1, half_width+1]", c.Snake.InitialSegments))
	}
	if _, err := grid.ParseDirection(c.Snake.Direction); err != nil {
		errs = append(errs, fmt.Errorf("snake.direction: %w", err))
	}
	if c.Timing.MoveInterval < constants.MinMoveInterval {
		errs = append(errs, fmt.Errorf("timing.move_interval %v below minimum %v", c.Timing.MoveInterval, constants.MinMoveInterval))
	}
	if c.Timing.FrameInterval <= 0 || c.Timing.FrameInterval > c.Timing.MoveInterval {
		errs = append(errs, fmt.Errorf("timing.frame_interval %v must be positive and at most move_interval", c.Timing.FrameInterval))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d must be positive", c.Audio.SampleRate))
	}
	for name, v := range map[string]float64{
		"audio.master_volume":    c.Audio.MasterVolume,
		"audio.eaten_volume":     c.Audio.EatenVolume,
		"audio.game_over_volume": c.Audio.GameOverVolume,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s %v out of range [0, 1]", name, v))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// SessionConfig returns the parameters for a new session
func (c *Config) SessionConfig() session.Config {
	dir, err := grid.ParseDirection(c.Snake.Direction)
	if err != nil {
		dir = grid.North
	}
	return session.Config{
		HalfWidth:       c.Arena.HalfWidth,
		InitialSegments: c.Snake.InitialSegments,
		Direction:       dir,
		Seed:            c.Seed,
	}
}

// AudioSettings returns the sound manager configuration
func (c *Config) AudioSettings() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.MasterVolume,
		SampleRate:   c.Audio.SampleRate,
		EffectVolumes: map[audio.SoundType]float64{
			audio.SoundEaten:    c.Audio.EatenVolume,
			audio.SoundGameOver: c.Audio.GameOverVolume,
		},
	}
}
