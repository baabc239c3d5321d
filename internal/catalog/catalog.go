package catalog

import (
	"context"
	"log/slog"
	"sync"

	"jobboard/internal/domain/job"
)

type Fetcher interface {
	FetchJobs(ctx context.Context) ([]job.Listing, error)
}

// Catalog keeps the last fetched job collection and filters it locally. Only
// a cleared filter goes back to the fetcher.
type Catalog struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu       sync.RWMutex
	snapshot []job.Listing
	loaded   bool
}

func New(fetcher Fetcher, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{fetcher: fetcher, logger: logger}
}

func (c *Catalog) Refresh(ctx context.Context) error {
	items, err := c.fetcher.FetchJobs(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "catalog fetch failed", "error", err)
		return err
	}

	c.mu.Lock()
	c.snapshot = items
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Search(ctx context.Context, f Filter) ([]job.Listing, error) {
	if f.IsEmpty() || !c.isLoaded() {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	snap := c.Snapshot()
	if f.IsEmpty() {
		return snap, nil
	}
	return Apply(snap, f), nil
}

// Snapshot returns a copy of the current collection.
func (c *Catalog) Snapshot() []job.Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]job.Listing, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

func (c *Catalog) isLoaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Partition splits the current snapshot into active and closed jobs.
func (c *Catalog) Partition() (active, closed []job.Listing) {
	return Partition(c.Snapshot())
}
