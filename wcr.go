// Package wcr counts lines, words, bytes and characters the way wc does.
//
// Example usage:
//
//	rec, err := wcr.Count(strings.NewReader("a b\nc\n"))
//	// rec.Lines == 2, rec.Words == 3, rec.Bytes == 6, rec.Chars == 6
//
//	sum, err := wcr.Run(ctx, []string{"a.txt", "b.txt"}, wcr.DefaultSelection(),
//	    wcr.WithOutput(os.Stdout), wcr.WithErrorOutput(os.Stderr))
package wcr

import (
	"context"
	"io"
	"os"

	"github.com/yamd1/wcr/internal/adapters/fs"
	"github.com/yamd1/wcr/internal/app"
	"github.com/yamd1/wcr/internal/counter"
	"github.com/yamd1/wcr/internal/domain"
	"github.com/yamd1/wcr/internal/ports"
)

// CountRecord holds the counts of one source, or the sum of several.
type CountRecord = domain.CountRecord

// Selection chooses which counts are printed.
type Selection = domain.Selection

// Summary describes a completed Run.
type Summary = app.Summary

// Option configures output and logging of Run.
type Option = app.Option

// Errors returned by Run. Use errors.As to inspect them.
type (
	SourceUnavailableError = domain.SourceUnavailableError
	ReadFailureError       = domain.ReadFailureError
)

// Stdin is the source name that reads standard input.
const Stdin = ports.Stdin

var (
	WithOutput      = app.WithOutput
	WithErrorOutput = app.WithErrorOutput
	WithLogger      = app.WithLogger
)

// Count scans r once and returns its counts.
func Count(r io.Reader) (CountRecord, error) {
	return counter.Count(r)
}

// DefaultSelection selects lines, words and bytes.
func DefaultSelection() Selection {
	return domain.DefaultSelection()
}

// Run counts sources in order, printing one line per source and a total
// line when more than one was counted. Stdin reads os.Stdin.
func Run(ctx context.Context, sources []string, sel Selection, opts ...Option) (Summary, error) {
	d := app.NewDriver(fs.NewSourceReader(os.Stdin), opts...)
	return d.Run(ctx, app.Config{Sources: sources, Selection: sel})
}
