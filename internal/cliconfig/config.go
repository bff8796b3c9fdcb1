package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yamd1/wcr/internal/domain"
	"github.com/yamd1/wcr/internal/ports"
)

// Config holds CLI configuration for wcr.
type Config struct {
	Files []string

	Lines bool
	Words bool
	Bytes bool
	Chars bool

	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
// No metric is selected; Validate applies the default selection.
func DefaultConfig() Config {
	return Config{
		Debounce: 100 * time.Millisecond,
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Validate checks the configuration for errors and sets derived defaults.
//
// With no files, standard input is read. With no metric selected, lines,
// words and bytes are shown. Bytes and chars cannot be combined.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		c.Files = []string{ports.Stdin}
	}

	if c.Bytes && c.Chars {
		return fmt.Errorf("the argument '--bytes' cannot be used with '--chars'")
	}

	if !c.Lines && !c.Words && !c.Bytes && !c.Chars {
		def := domain.DefaultSelection()
		c.Lines, c.Words, c.Bytes = def.Lines, def.Words, def.Bytes
	}

	if c.Watch {
		for _, f := range c.Files {
			if f == ports.Stdin {
				return fmt.Errorf("watch requires named files; standard input cannot be watched")
			}
		}
		if c.Debounce <= 0 {
			return fmt.Errorf("debounce must be positive")
		}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = zerolog.WarnLevel.String()
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// Selection returns the metrics selected by the configuration.
func (c Config) Selection() domain.Selection {
	return domain.Selection{
		Lines: c.Lines,
		Words: c.Words,
		Bytes: c.Bytes,
		Chars: c.Chars,
	}
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// metricFlags name the flags that together form the metric selection.
var metricFlags = []string{"lines", "words", "bytes", "chars"}

// configSetter applies values from lower-precedence layers while leaving
// explicitly set flags alone.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter treats the metric flags as one group: once any of them is
// given on the command line, the file and env layers leave the whole
// selection alone.
func newConfigSetter(changed map[string]bool) *configSetter {
	skip := make(map[string]bool, len(changed)+len(metricFlags))
	for name, ok := range changed {
		skip[name] = ok
	}
	for _, name := range metricFlags {
		if changed[name] {
			for _, m := range metricFlags {
				skip[m] = true
			}
			break
		}
	}
	return &configSetter{changed: skip}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
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

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
