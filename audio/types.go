package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundEaten    SoundType = iota // Apple consumed
	SoundGameOver                  // Session ended
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEaten:
		return "eaten"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
