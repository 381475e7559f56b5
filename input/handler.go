package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Handler translates tcell events into intents
type Handler struct {
	table *KeyTable
}

// NewHandler creates a handler, nil table selects the defaults
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// HandleEvent maps one event to an intent, unknown input yields IntentNone
func (h *Handler) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return Intent{}
}

func (h *Handler) handleKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		// Modified runes (Alt+w) are not game keys
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl|tcell.ModMeta) != 0 {
			return Intent{}
		}
		if entry, ok := h.table.Runes[unicode.ToLower(ev.Rune())]; ok {
			return Intent{Type: entry.IntentType, Direction: entry.Direction}
		}
		return Intent{}
	}

	if entry, ok := h.table.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: entry.IntentType, Direction: entry.Direction}
	}
	return Intent{}
}
