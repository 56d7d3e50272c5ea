package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jamesrr39/goutil/logpkg"

	"github.com/vegasq/querylab/dataset"
	"github.com/vegasq/querylab/internal/config"
	"github.com/vegasq/querylab/output"
)

// ErrUnknownEntry is returned when a requested entry is not in the catalog.
var ErrUnknownEntry = errors.New("unknown catalog entry")

// Runner runs catalog entries against one dataset and writes every result
// set to a formatter.
type Runner struct {
	ds        *dataset.Dataset
	cfg       config.Config
	formatter output.Formatter
	logger    *logpkg.Logger
}

// NewRunner creates a runner.
func NewRunner(ds *dataset.Dataset, cfg config.Config, formatter output.Formatter, logger *logpkg.Logger) *Runner {
	return &Runner{ds: ds, cfg: cfg, formatter: formatter, logger: logger}
}

// Run runs the named entries in the order given. All names are resolved
// before anything runs, so an unknown name produces no output at all.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		e, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEntry, name)
		}
		entries = append(entries, e)
	}
	return r.run(ctx, entries)
}

// RunAll runs every entry in catalog order.
func (r *Runner) RunAll(ctx context.Context) error {
	return r.run(ctx, Entries())
}

func (r *Runner) run(ctx context.Context, entries []Entry) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.logger.Debug("running %s (%s)", e.Name, e.Category)
		sets, err := e.Run(r.ds, r.cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}

		for _, rs := range sets {
			r.logger.Debug("%s: %q has %d rows", e.Name, rs.Title, len(rs.Rows))
			if err := r.formatter.Format(rs); err != nil {
				return fmt.Errorf("%s: failed to write results: %w", e.Name, err)
			}
		}
	}
	return nil
}
