package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/pipeflow/pkg/hydraulics"
)

// Output formats understood by the report package.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config holds CLI configuration for pipeflow.
type Config struct {
	Format    string
	Precision int

	MaxIterations  int
	Tolerance      float64
	InitialGuess   float64
	LegacyGrouping bool

	LogLevel      string
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	solver := hydraulics.DefaultSolverConfig()
	return Config{
		Format:        FormatText,
		Precision:     6,
		MaxIterations: solver.MaxIterations,
		Tolerance:     solver.Tolerance,
		InitialGuess:  solver.InitialGuess,
		LogLevel:      zerolog.LevelInfoValue,
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("format must be one of text, json, yaml, toml; got %q", c.Format)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", c.Precision)
	}
	if err := c.SolverConfig().Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}

// SolverConfig returns the Colebrook settings carried by the configuration.
func (c *Config) SolverConfig() hydraulics.SolverConfig {
	return hydraulics.SolverConfig{
		InitialGuess:   c.InitialGuess,
		Tolerance:      c.Tolerance,
		MaxIterations:  c.MaxIterations,
		LegacyGrouping: c.LegacyGrouping,
	}
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

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

// setIntFromString parses a string to int and sets the destination if positive.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if positive.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
