package domain

import (
	"errors"
	"io/fs"
)

// Domain errors returned by the driver and the source adapters.
// These can be checked with errors.Is.
var (
	// ErrNoSources is returned when a run is started without any source.
	ErrNoSources = errors.New("wcr: no sources configured")

	// ErrNoMetrics is returned when a run is started with an empty selection.
	ErrNoMetrics = errors.New("wcr: no metrics selected")

	// ErrIsDirectory is returned when a source names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// SourceUnavailableError reports that a source could not be opened.
// The driver reports it and moves on to the next source.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return e.Source + ": " + reason(e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// ReadFailureError reports that an opened source failed while being counted.
// It ends the run.
type ReadFailureError struct {
	Source string
	Err    error
}

func (e *ReadFailureError) Error() string {
	return e.Source + ": " + reason(e.Err)
}

func (e *ReadFailureError) Unwrap() error { return e.Err }

// reason drops the op/path prefix of a *fs.PathError since the source
// name is already part of the message.
func reason(err error) string {
	if err == nil {
		return "unknown error"
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
