// Package domain contains the core value types and errors for wcr.
//
// This package is the innermost layer. It has no dependencies on the file
// system, logging or the CLI and holds only counting rules.
//
// # Types
//
//   - [CountRecord]: lines, words, bytes and characters of one source
//   - [Selection]: which of the four metrics are displayed
//   - [SourceUnavailableError]: a source could not be opened (non-fatal)
//   - [ReadFailureError]: an opened source failed mid-scan (fatal)
//
// CountRecord values are immutable; [CountRecord.Add] returns a new record.
package domain
