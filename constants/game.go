package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the idle production interval
	TickInterval = 100 * time.Millisecond

	// AutosaveInterval is the background save interval, independent of ticks
	AutosaveInterval = 30 * time.Second

	// NoticeDuration is how long a transient status notice stays on screen
	NoticeDuration = 2 * time.Second
)

// Persistence Constants
const (
	// SaveDir is the directory holding the save file
	SaveDir = "saves"

	// SavePath is the fixed save file location relative to the working directory
	SavePath = SaveDir + "/game.save"

	// SaveVersion is written into every save file; loads reject other versions
	SaveVersion = 1
)

// Logging Constants
const (
	LogDir      = "logs"
	LogFileName = "clicker.log"
)

// ConfigName is the optional config file basename (clicker.toml)
const ConfigName = "clicker"

// EnvPrefix prefixes environment overrides (CLICKER_TICK_INTERVAL, ...)
const EnvPrefix = "CLICKER"
