package cliconfig

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.PoolInitial != 64 || cfg.PoolOverflow != 16 {
		t.Errorf("pool sizes = %d/%d, want 64/16", cfg.PoolInitial, cfg.PoolOverflow)
	}
	if cfg.WatchDebounce != 100*time.Millisecond {
		t.Errorf("WatchDebounce = %v, want 100ms", cfg.WatchDebounce)
	}
	if !strings.HasSuffix(cfg.SaveDir, "saves") {
		t.Errorf("SaveDir = %v, want .../saves", cfg.SaveDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			SaveDir:       "/tmp/saves",
			LogLevel:      "debug",
			PoolInitial:   4,
			PoolOverflow:  0,
			WatchPattern:  "*.sav",
			WatchDebounce: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing save dir", mutate: func(c *Config) { c.SaveDir = "" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "chatty" }, wantErr: true},
		{name: "empty log level defaults", mutate: func(c *Config) { c.LogLevel = "" }},
		{name: "negative pool", mutate: func(c *Config) { c.PoolInitial = -1 }, wantErr: true},
		{name: "negative overflow uses fallback", mutate: func(c *Config) { c.PoolOverflow = -1 }},
		{name: "bad pattern", mutate: func(c *Config) { c.WatchPattern = "[" }, wantErr: true},
		{name: "empty pattern defaults", mutate: func(c *Config) { c.WatchPattern = "" }},
		{name: "zero debounce", mutate: func(c *Config) { c.WatchDebounce = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (cfg.LogLevel == "" || cfg.WatchPattern == "") {
				t.Errorf("derived defaults not set: %+v", cfg)
			}
		})
	}
}
