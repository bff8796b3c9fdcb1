package ports

import "io"

// Stdin is the source identifier that selects standard input.
const Stdin = "-"

// SourceOpener acquires the byte stream behind a source identifier.
type SourceOpener interface {
	// Open returns a stream for id, which is either Stdin or a file path.
	// An error means the source is unavailable; the caller reports it and
	// moves on. The caller must Close the stream when done.
	Open(id string) (io.ReadCloser, error)
}
