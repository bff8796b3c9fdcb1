// Package log provides the logging abstraction used by wcr components.
//
// The driver and the watcher log through the [Logger] interface so they can
// run silently in tests and as a library. Two implementations are provided:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.WarnLevel)
//	quiet := log.NewNoopLogger()
//
// Diagnostics that are part of the tool's output (such as
// "missing.txt: no such file or directory") are not written through this
// package; it carries operational detail only.
package log
