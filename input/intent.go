package input

import "github.com/lixenwraith/eldritch-clicker/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, Ctrl+Q
	IntentSave   // s
	IntentResize // Terminal resize event

	// Game intents
	IntentClick        // .
	IntentSwitchMenu   // 1, 2, 3
	IntentNavigateUp   // Up arrow
	IntentNavigateDown // Down arrow
	IntentConfirm      // Enter
)

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentSave:
		return "save"
	case IntentResize:
		return "resize"
	case IntentClick:
		return "click"
	case IntentSwitchMenu:
		return "switch-menu"
	case IntentNavigateUp:
		return "up"
	case IntentNavigateDown:
		return "down"
	case IntentConfirm:
		return "confirm"
	}
	return "unknown"
}

// Intent is a parsed input event; Menu is set only for IntentSwitchMenu
type Intent struct {
	Type IntentType
	Menu game.Menu
}
