package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"XFER_SAVE_DIR":       "/env/saves",
				"XFER_LOG_LEVEL":      "error",
				"XFER_POOL_INITIAL":   "0",
				"XFER_POOL_OVERFLOW":  "4",
				"XFER_WATCH_PATTERN":  "*.bin",
				"XFER_WATCH_DEBOUNCE": "2s",
			},
			changed: map[string]bool{},
			initial: Config{PoolInitial: 64},
			expected: Config{
				SaveDir:       "/env/saves",
				LogLevel:      "error",
				PoolInitial:   0,
				PoolOverflow:  4,
				WatchPattern:  "*.bin",
				WatchDebounce: 2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"XFER_SAVE_DIR":  "/env/saves",
				"XFER_LOG_LEVEL": "debug",
			},
			changed:  map[string]bool{"save-dir": true},
			initial:  Config{SaveDir: "/flag"},
			expected: Config{SaveDir: "/flag", LogLevel: "debug"},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"XFER_WATCH_DEBOUNCE": "whenever"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"XFER_POOL_INITIAL": "lots"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{
				"XFER_SAVE_DIR", "XFER_LOG_LEVEL", "XFER_POOL_INITIAL",
				"XFER_POOL_OVERFLOW", "XFER_WATCH_PATTERN", "XFER_WATCH_DEBOUNCE",
			} {
				t.Setenv(key, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
