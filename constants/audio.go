package constants

import "time"

// Audio Engine Timing
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Apple Eaten Sound Timing
const (
	EatenSoundDuration    = 180 * time.Millisecond
	EatenSoundAttack      = 5 * time.Millisecond
	EatenSoundFundRelease = 160 * time.Millisecond
	EatenSoundOverRelease = 80 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
	GameOverTailDuration = 500 * time.Millisecond
	GameOverTailRelease  = 400 * time.Millisecond
)
