package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Format         string  `toml:"format"`
	Precision      int     `toml:"precision"`
	MaxIterations  int     `toml:"max_iterations"`
	Tolerance      float64 `toml:"tolerance"`
	InitialGuess   float64 `toml:"initial_guess"`
	LegacyGrouping *bool   `toml:"legacy_colebrook"`
	LogLevel       string  `toml:"log_level"`
	WatchDebounce  string  `toml:"watch_debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// Unknown keys are rejected so typos do not pass silently.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.pipeflow/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pipeflow", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("precision", fc.Precision, &cfg.Precision)
	s.setInt("max-iter", fc.MaxIterations, &cfg.MaxIterations)

	s.setFloat("tolerance", fc.Tolerance, &cfg.Tolerance)
	s.setFloat("initial-guess", fc.InitialGuess, &cfg.InitialGuess)

	s.setBool("legacy-colebrook", fc.LegacyGrouping, &cfg.LegacyGrouping)

	return s.setDuration("debounce", fc.WatchDebounce, &cfg.WatchDebounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
