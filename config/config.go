// Package config resolves runtime settings from defaults, an optional clicker.toml and CLICKER_* env vars
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/eldritch-clicker/constants"
	"github.com/spf13/viper"
)

// ErrInvalid marks a setting that failed validation
var ErrInvalid = errors.New("invalid config")

// Config holds resolved settings
type Config struct {
	SavePath         string
	TickInterval     time.Duration
	AutosaveInterval time.Duration
	NoticeDuration   time.Duration
	Sound            bool
	Volume           float64
	Debug            bool
}

// Setting keys
const (
	KeySavePath         = "save_path"
	KeyTickInterval     = "tick_interval"
	KeyAutosaveInterval = "autosave_interval"
	KeyNoticeDuration   = "notice_duration"
	KeySound            = "sound"
	KeyVolume           = "volume"
	KeyDebug            = "debug"
)

// Default returns the built-in settings
func Default() Config {
	return Config{
		SavePath:         constants.SavePath,
		TickInterval:     constants.TickInterval,
		AutosaveInterval: constants.AutosaveInterval,
		NoticeDuration:   constants.NoticeDuration,
		Sound:            true,
		Volume:           constants.DefaultVolume,
		Debug:            false,
	}
}

// Load resolves settings relative to the working directory
func Load() (Config, error) {
	return LoadFrom(".")
}

// LoadFrom resolves settings with dir as the location of .env and clicker.toml
// Precedence, lowest first: defaults, clicker.toml, process env (including values loaded from .env)
func LoadFrom(dir string) (Config, error) {
	// .env never overrides variables already present in the process env
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault(KeySavePath, def.SavePath)
	v.SetDefault(KeyTickInterval, def.TickInterval)
	v.SetDefault(KeyAutosaveInterval, def.AutosaveInterval)
	v.SetDefault(KeyNoticeDuration, def.NoticeDuration)
	v.SetDefault(KeySound, def.Sound)
	v.SetDefault(KeyVolume, def.Volume)
	v.SetDefault(KeyDebug, def.Debug)

	v.SetConfigName(constants.ConfigName)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read %s.toml: %w", constants.ConfigName, err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	cfg := Config{
		SavePath:         v.GetString(KeySavePath),
		TickInterval:     v.GetDuration(KeyTickInterval),
		AutosaveInterval: v.GetDuration(KeyAutosaveInterval),
		NoticeDuration:   v.GetDuration(KeyNoticeDuration),
		Sound:            v.GetBool(KeySound),
		Volume:           v.GetFloat64(KeyVolume),
		Debug:            v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unusable settings
// Unparsable durations resolve to zero and are reported as non-positive
func (c Config) Validate() error {
	if c.SavePath == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeySavePath)
	}
	durations := []struct {
		key string
		d   time.Duration
	}{
		{KeyTickInterval, c.TickInterval},
		{KeyAutosaveInterval, c.AutosaveInterval},
		{KeyNoticeDuration, c.NoticeDuration},
	}
	for _, e := range durations {
		if e.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, e.key, e.d)
		}
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrInvalid, KeyVolume, c.Volume)
	}
	return nil
}
