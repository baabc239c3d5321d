package catalog

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	items []job.Listing
	err   error
	calls int
}

func (f *countingFetcher) FetchJobs(context.Context) ([]job.Listing, error) {
	f.calls++
	return f.items, f.err
}

func TestCatalog_SearchFiltersSnapshotWithoutRefetch(t *testing.T) {
	f := &countingFetcher{items: sampleJobs()}
	c := New(f, nil)
	ctx := context.Background()

	got, err := c.Search(ctx, Filter{Search: "eng"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineer"}, titles(got))
	assert.Equal(t, 1, f.calls, "first search loads the snapshot")

	got, err = c.Search(ctx, Filter{Location: "nyc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Analyst"}, titles(got))
	assert.Equal(t, 1, f.calls)
}

func TestCatalog_ClearedFilterRefetches(t *testing.T) {
	f := &countingFetcher{items: sampleJobs()}
	c := New(f, nil)
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	f.items = append(f.items, listing("Designer", "Delta", "Paris", "40000 - 50000"))

	got, err := c.Search(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
	assert.Equal(t, []string{"Engineer", "Analyst", "Designer"}, titles(got))
}

func TestCatalog_FetchErrorKeepsPreviousSnapshot(t *testing.T) {
	f := &countingFetcher{items: sampleJobs()}
	c := New(f, nil)
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))

	f.err = errors.New("connection refused")
	_, err := c.Search(ctx, Filter{})
	require.Error(t, err)
	assert.Len(t, c.Snapshot(), 2)
}
