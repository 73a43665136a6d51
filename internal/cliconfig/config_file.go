package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	SaveDir       string `toml:"save_dir"`
	LogLevel      string `toml:"log_level"`
	PoolInitial   *int   `toml:"pool_initial"`
	PoolOverflow  *int   `toml:"pool_overflow"`
	WatchPattern  string `toml:"watch_pattern"`
	WatchDebounce string `toml:"watch_debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.xfer/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".xfer", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("save-dir", fc.SaveDir, &cfg.SaveDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("watch-pattern", fc.WatchPattern, &cfg.WatchPattern)

	s.setInt("pool-initial", fc.PoolInitial, &cfg.PoolInitial)
	s.setInt("pool-overflow", fc.PoolOverflow, &cfg.PoolOverflow)

	return s.setDuration("watch-debounce", fc.WatchDebounce, &cfg.WatchDebounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
