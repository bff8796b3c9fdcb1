package fs

import (
	"io"
	"os"

	"github.com/yamd1/wcr/internal/domain"
	"github.com/yamd1/wcr/internal/ports"
)

// SourceReader implements ports.SourceOpener using the file system.
// The Stdin identifier maps to the reader given to NewSourceReader.
type SourceReader struct {
	stdin io.Reader
}

// NewSourceReader creates a SourceReader that serves ports.Stdin from stdin.
func NewSourceReader(stdin io.Reader) *SourceReader {
	return &SourceReader{stdin: stdin}
}

// Open opens id for reading.
// Standard input is returned wrapped so closing it leaves the process
// stream open. Directories are rejected with domain.ErrIsDirectory.
func (r *SourceReader) Open(id string) (io.ReadCloser, error) {
	if id == ports.Stdin {
		if r.stdin == nil {
			return nil, &os.PathError{Op: "open", Path: id, Err: os.ErrInvalid}
		}
		return io.NopCloser(r.stdin), nil
	}

	f, err := os.Open(id)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, &os.PathError{Op: "open", Path: id, Err: domain.ErrIsDirectory}
	}

	return f, nil
}
