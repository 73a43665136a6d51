package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds CLI configuration for xferctl.
type Config struct {
	SaveDir  string
	LogLevel string

	PoolInitial  int
	PoolOverflow int

	WatchPattern  string
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SaveDir:       DefaultSaveDir(),
		LogLevel:      "info",
		PoolInitial:   64,
		PoolOverflow:  16,
		WatchPattern:  "*.sav",
		WatchDebounce: 100 * time.Millisecond,
	}
}

// DefaultSaveDir returns ~/.xfer/saves, or "saves" if the home directory
// is not accessible.
func DefaultSaveDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".xfer", "saves")
	}
	return "saves"
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.SaveDir == "" {
		return fmt.Errorf("save-dir is required")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if c.PoolInitial < 0 {
		return fmt.Errorf("pool-initial must not be negative")
	}
	if c.WatchPattern == "" {
		c.WatchPattern = "*.sav"
	}
	if _, err := filepath.Match(c.WatchPattern, ""); err != nil {
		return fmt.Errorf("watch-pattern: %w", err)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch debounce must be positive")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-nil and flag not changed.
// Pool sizes may legitimately be zero, so presence is signalled by a pointer.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
