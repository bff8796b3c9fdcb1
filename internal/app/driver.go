package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yamd1/wcr/internal/counter"
	"github.com/yamd1/wcr/internal/domain"
	"github.com/yamd1/wcr/internal/ports"
	"github.com/yamd1/wcr/pkg/log"
)

// Summary describes a completed run.
type Summary struct {
	// Total is the sum of every counted source
	Total domain.CountRecord

	// Counted is the number of sources that were opened and counted
	Counted int

	// Failed lists the sources that could not be opened, in order
	Failed []string
}

// OK reports whether every source was counted.
func (s Summary) OK() bool {
	return len(s.Failed) == 0
}

// Option configures a Driver.
type Option func(*Driver)

// WithOutput sets where result lines are written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(d *Driver) {
		d.out = w
	}
}

// WithErrorOutput sets where per-source diagnostics are written.
// Defaults to io.Discard.
func WithErrorOutput(w io.Writer) Option {
	return func(d *Driver) {
		d.errOut = w
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// Driver counts a list of sources one after another and prints one line
// per source plus a total line.
type Driver struct {
	opener ports.SourceOpener
	out    io.Writer
	errOut io.Writer
	logger log.Logger
}

// NewDriver creates a Driver reading sources through opener.
func NewDriver(opener ports.SourceOpener, opts ...Option) *Driver {
	d := &Driver{
		opener: opener,
		out:    io.Discard,
		errOut: io.Discard,
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run counts every source in cfg.Sources.
//
// A source that cannot be opened is reported as "<source>: <reason>" on the
// error output and skipped; it is listed in Summary.Failed and does not
// produce an error. A source that fails while being counted ends the run
// with a *domain.ReadFailureError. The total line is written only when more
// than one source was counted.
//
// The context is checked between sources; a read in progress is not
// interrupted.
func (d *Driver) Run(ctx context.Context, cfg Config) (Summary, error) {
	var sum Summary

	if err := cfg.Validate(); err != nil {
		return sum, err
	}

	for _, src := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		rec, err := d.countSource(src)
		if err != nil {
			var unavailable *domain.SourceUnavailableError
			if !errors.As(err, &unavailable) {
				return sum, err
			}
			d.logger.Debug("source unavailable", log.String("source", src), log.Err(unavailable.Err))
			if _, werr := fmt.Fprintln(d.errOut, unavailable.Error()); werr != nil {
				return sum, fmt.Errorf("write diagnostic: %w", werr)
			}
			sum.Failed = append(sum.Failed, src)
			continue
		}

		d.logger.Debug("counted source",
			log.String("source", src),
			log.Int64("lines", rec.Lines),
			log.Int64("words", rec.Words),
			log.Int64("bytes", rec.Bytes),
			log.Int64("chars", rec.Chars),
		)

		if err := d.writeLine(rec, cfg.Selection, src); err != nil {
			return sum, err
		}
		sum.Total = sum.Total.Add(rec)
		sum.Counted++
	}

	if sum.Counted > 1 {
		if err := d.writeLine(sum.Total, cfg.Selection, TotalLabel); err != nil {
			return sum, err
		}
	}

	d.logger.Debug("run complete",
		log.Int("counted", sum.Counted),
		log.Int("failed", len(sum.Failed)),
	)
	return sum, nil
}

// countSource opens and counts a single source, closing it before returning.
func (d *Driver) countSource(src string) (domain.CountRecord, error) {
	rc, err := d.opener.Open(src)
	if err != nil {
		return domain.CountRecord{}, &domain.SourceUnavailableError{Source: src, Err: err}
	}
	defer rc.Close()

	rec, err := counter.Count(rc)
	if err != nil {
		return domain.CountRecord{}, &domain.ReadFailureError{Source: src, Err: err}
	}
	return rec, nil
}

func (d *Driver) writeLine(rec domain.CountRecord, sel domain.Selection, name string) error {
	if _, err := fmt.Fprintln(d.out, FormatLine(rec, sel, name)); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
