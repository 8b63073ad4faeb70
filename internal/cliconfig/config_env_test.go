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
				"PIPEFLOW_FORMAT":           "toml",
				"PIPEFLOW_PRECISION":        "10",
				"PIPEFLOW_MAX_ITERATIONS":   "300",
				"PIPEFLOW_TOLERANCE":        "1e-14",
				"PIPEFLOW_INITIAL_GUESS":    "0.005",
				"PIPEFLOW_LEGACY_COLEBROOK": "1",
				"PIPEFLOW_LOG_LEVEL":        "error",
				"PIPEFLOW_WATCH_DEBOUNCE":   "2s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Format:         "toml",
				Precision:      10,
				MaxIterations:  300,
				Tolerance:      1e-14,
				InitialGuess:   0.005,
				LegacyGrouping: true,
				LogLevel:       "error",
				WatchDebounce:  2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"PIPEFLOW_FORMAT":    "json",
				"PIPEFLOW_PRECISION": "3",
			},
			changed:  map[string]bool{"format": true},
			initial:  Config{Format: "yaml", Precision: 6},
			expected: Config{Format: "yaml", Precision: 3},
		},
		{
			name:     "non-positive numbers are ignored",
			envVars:  map[string]string{"PIPEFLOW_MAX_ITERATIONS": "0", "PIPEFLOW_TOLERANCE": "-1"},
			changed:  map[string]bool{},
			initial:  Config{MaxIterations: 10, Tolerance: 1e-9},
			expected: Config{MaxIterations: 10, Tolerance: 1e-9},
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"PIPEFLOW_LEGACY_COLEBROOK": "false"},
			changed:  map[string]bool{},
			initial:  Config{LegacyGrouping: true},
			expected: Config{LegacyGrouping: false},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"PIPEFLOW_PRECISION": "many"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid float",
			envVars: map[string]string{"PIPEFLOW_TOLERANCE": "tiny"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"PIPEFLOW_WATCH_DEBOUNCE": "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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
