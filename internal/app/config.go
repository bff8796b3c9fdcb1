package app

import (
	"github.com/yamd1/wcr/internal/domain"
)

// Config is the resolved configuration of one counting run.
// Defaults and flag conflicts are handled before it reaches the driver.
type Config struct {
	// Sources are counted in order; ports.Stdin selects standard input
	Sources []string

	// Selection lists the metrics rendered for each source and the total
	Selection domain.Selection
}

// Validate checks that the run has something to count and something to show.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return domain.ErrNoSources
	}
	if c.Selection.Empty() {
		return domain.ErrNoMetrics
	}
	return nil
}
