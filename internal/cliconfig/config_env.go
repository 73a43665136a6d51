package cliconfig

import "os"

// ApplyEnvConfig applies XFER_* environment variables to cfg.
// Environment values override the config file but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("save-dir", os.Getenv("XFER_SAVE_DIR"), &cfg.SaveDir)
	s.setString("log-level", os.Getenv("XFER_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("watch-pattern", os.Getenv("XFER_WATCH_PATTERN"), &cfg.WatchPattern)

	if err := s.setIntFromString("pool-initial", os.Getenv("XFER_POOL_INITIAL"), &cfg.PoolInitial); err != nil {
		return err
	}
	if err := s.setIntFromString("pool-overflow", os.Getenv("XFER_POOL_OVERFLOW"), &cfg.PoolOverflow); err != nil {
		return err
	}
	return s.setDuration("watch-debounce", os.Getenv("XFER_WATCH_DEBOUNCE"), &cfg.WatchDebounce)
}
