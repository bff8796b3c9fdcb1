package cliconfig

import "os"

// ApplyEnvConfig applies configuration from WCR_* environment variables.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBoolFromString("lines", os.Getenv("WCR_LINES"), &cfg.Lines)
	s.setBoolFromString("words", os.Getenv("WCR_WORDS"), &cfg.Words)
	s.setBoolFromString("bytes", os.Getenv("WCR_BYTES"), &cfg.Bytes)
	s.setBoolFromString("chars", os.Getenv("WCR_CHARS"), &cfg.Chars)
	s.setBoolFromString("watch", os.Getenv("WCR_WATCH"), &cfg.Watch)

	if err := s.setDuration("debounce", os.Getenv("WCR_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv("WCR_LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
