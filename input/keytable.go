// Package input maps terminal key events to game intents
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/eldritch-clicker/game"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC: {Type: IntentQuit},
			tcell.KeyCtrlQ: {Type: IntentQuit},
			tcell.KeyUp:    {Type: IntentNavigateUp},
			tcell.KeyDown:  {Type: IntentNavigateDown},
			tcell.KeyEnter: {Type: IntentConfirm},
		},
		Runes: map[rune]Intent{
			'.': {Type: IntentClick},
			's': {Type: IntentSave},
			'1': {Type: IntentSwitchMenu, Menu: game.MenuMain},
			'2': {Type: IntentSwitchMenu, Menu: game.MenuBuildings},
			'3': {Type: IntentSwitchMenu, Menu: game.MenuUpgrades},
		},
	}
}

// Mapper parses tcell events into intents
type Mapper struct {
	keys *KeyTable
}

// NewMapper creates a mapper over table; nil selects DefaultKeyTable
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{keys: table}
}

// Map returns the intent for ev, IntentNone for unbound keys and non-key events
func (m *Mapper) Map(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.mapKey(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Mapper) mapKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		// Runes with Ctrl/Alt held are not game keys
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Intent{}
		}
		return m.keys.Runes[ev.Rune()]
	}
	return m.keys.SpecialKeys[ev.Key()]
}
