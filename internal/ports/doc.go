// Package ports defines the interfaces that connect the counting driver to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [SourceOpener]: opens a named source (file path or standard input)
//
// # Usage
//
// The driver (internal/app) depends only on these interfaces. Adapters
// (internal/adapters) implement them against the file system and the
// process's standard input, and tests substitute in-memory fakes.
package ports
