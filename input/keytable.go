package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/grid"
)

// KeyEntry describes what a key produces
type KeyEntry struct {
	IntentType IntentType
	Direction  grid.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, grid.DirNone},
			tcell.KeyEscape: {IntentQuit, grid.DirNone},
			tcell.KeyUp:     {IntentDirection, grid.North},
			tcell.KeyDown:   {IntentDirection, grid.South},
			tcell.KeyLeft:   {IntentDirection, grid.West},
			tcell.KeyRight:  {IntentDirection, grid.East},
		},
		Runes: map[rune]KeyEntry{
			// wasd
			'w': {IntentDirection, grid.North},
			's': {IntentDirection, grid.South},
			'a': {IntentDirection, grid.West},
			'd': {IntentDirection, grid.East},

			// vi
			'k': {IntentDirection, grid.North},
			'j': {IntentDirection, grid.South},
			'h': {IntentDirection, grid.West},
			'l': {IntentDirection, grid.East},

			'p': {IntentPause, grid.DirNone},
			'm': {IntentMute, grid.DirNone},
			'r': {IntentRestart, grid.DirNone},
			'q': {IntentQuit, grid.DirNone},
		},
	}
}

// Bind overrides or adds a rune binding
func (kt *KeyTable) Bind(r rune, entry KeyEntry) {
	kt.Runes[unicode.ToLower(r)] = entry
}
