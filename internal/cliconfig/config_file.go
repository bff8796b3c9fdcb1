package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config in a TOML-friendly form. Pointers distinguish
// "false" from "not set".
type FileConfig struct {
	Lines    *bool  `toml:"lines"`
	Words    *bool  `toml:"words"`
	Bytes    *bool  `toml:"bytes"`
	Chars    *bool  `toml:"chars"`
	Watch    *bool  `toml:"watch"`
	Debounce string `toml:"debounce"`
	LogLevel string `toml:"log_level"`
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

// DefaultConfigPath returns ~/.wcr/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".wcr", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to cfg.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBool("lines", fc.Lines, &cfg.Lines)
	s.setBool("words", fc.Words, &cfg.Words)
	s.setBool("bytes", fc.Bytes, &cfg.Bytes)
	s.setBool("chars", fc.Chars, &cfg.Chars)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
