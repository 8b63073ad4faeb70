package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PIPEFLOW_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", os.Getenv("PIPEFLOW_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("PIPEFLOW_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("precision", os.Getenv("PIPEFLOW_PRECISION"), &cfg.Precision); err != nil {
		return err
	}
	if err := s.setIntFromString("max-iter", os.Getenv("PIPEFLOW_MAX_ITERATIONS"), &cfg.MaxIterations); err != nil {
		return err
	}
	if err := s.setFloatFromString("tolerance", os.Getenv("PIPEFLOW_TOLERANCE"), &cfg.Tolerance); err != nil {
		return err
	}
	if err := s.setFloatFromString("initial-guess", os.Getenv("PIPEFLOW_INITIAL_GUESS"), &cfg.InitialGuess); err != nil {
		return err
	}

	s.setBoolFromString("legacy-colebrook", os.Getenv("PIPEFLOW_LEGACY_COLEBROOK"), &cfg.LegacyGrouping)

	return s.setDuration("debounce", os.Getenv("PIPEFLOW_WATCH_DEBOUNCE"), &cfg.WatchDebounce)
}
