package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/events"
)

// SoundManager plays game cues through the beep speaker
// All operations are no-ops until Initialize succeeds, so the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Game over cue plays once per session
	gameOverLatched bool

	played [soundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the audio device, disabled config skips it
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayEaten plays the apple cue
func (sm *SoundManager) PlayEaten() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.play(SoundEaten)
}

// PlayGameOver plays the game over cue, returns false if already played this session
func (sm *SoundManager) PlayGameOver() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.gameOverLatched {
		return false
	}
	sm.gameOverLatched = true
	sm.play(SoundGameOver)
	return true
}

// ResetLatch re-arms the game over cue for a new session
func (sm *SoundManager) ResetLatch() {
	sm.mu.Lock()
	sm.gameOverLatched = false
	sm.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted returns mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether a device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCount returns how many times a cue was requested while audible
func (sm *SoundManager) PlayCount(t SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return sm.played[t]
}

// play must be called with mu held
func (sm *SoundManager) play(t SoundType) {
	if sm.muted || !sm.config.Enabled {
		return
	}
	sm.played[t]++

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(t, sm.config)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{events.EventAppleEaten, events.EventGameOver}
}

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventAppleEaten:
		sm.PlayEaten()
	case events.EventGameOver:
		if !sm.PlayGameOver() {
			log.Printf("audio: duplicate game over cue suppressed at tick %d", ev.Tick)
		}
	}
}
