package audio

import "github.com/lixenwraith/grid-snake/constants"

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock mix, apple cue kept quiet
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEaten:    0.2,
			SoundGameOver: 0.5,
		},
	}
}

// Volume returns the effective volume of a sound, clamped to [0, 1]
func (c *AudioConfig) Volume(t SoundType) float64 {
	v := c.EffectVolumes[t] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
