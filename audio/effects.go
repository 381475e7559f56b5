package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/grid-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping and ends the stream at duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.attackSamples + e.sustainSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a log2 volume effect, zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatenSound generates a short bell for apple consumption
func CreateEatenSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := NewOscillator(1318.51, constants.EatenSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.EatenSoundDuration, constants.EatenSoundAttack, constants.EatenSoundFundRelease, rate)

	// Overtone (octave up)
	over := NewOscillator(2637.02, constants.EatenSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.EatenSoundDuration, constants.EatenSoundAttack, constants.EatenSoundOverRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume(SoundEaten))
}

// CreateGameOverSound generates a descending three note motif with a low sine tail
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A4, F4, D4
	notes := []float64{440.0, 349.23, 293.66}
	parts := make([]beep.Streamer, 0, len(notes)+1)
	for _, freq := range notes {
		osc := NewOscillator(freq, constants.GameOverNoteDuration, WaveTriangle, rate)
		parts = append(parts, NewEnvelope(osc, constants.GameOverNoteDuration, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate))
	}

	// D3 tail
	if tone, err := generators.SineTone(rate, 146.83); err == nil {
		tail := beep.Take(rate.N(constants.GameOverTailDuration), tone)
		parts = append(parts, NewEnvelope(tail, constants.GameOverTailDuration, 0, constants.GameOverTailRelease, rate))
	}

	return newVolume(beep.Seq(parts...), cfg.Volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEaten:
		return CreateEatenSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

// SoundDuration returns the nominal length of a sound effect
func SoundDuration(soundType SoundType) time.Duration {
	switch soundType {
	case SoundEaten:
		return constants.EatenSoundDuration
	case SoundGameOver:
		return 3*constants.GameOverNoteDuration + constants.GameOverTailDuration
	default:
		return 0
	}
}
