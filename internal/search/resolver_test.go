package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ramenreality/internal/geocode"
)

type searcherFunc func(ctx context.Context, query string) ([]geocode.Result, error)

func (f searcherFunc) Search(ctx context.Context, query string) ([]geocode.Result, error) {
	return f(ctx, query)
}

// recordingSearcher counts calls and answers with a canned result named
// after the query.
type recordingSearcher struct {
	mu      sync.Mutex
	queries []string
}

func (s *recordingSearcher) Search(_ context.Context, query string) ([]geocode.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return []geocode.Result{{Name: query, Lat: "25.0", Lon: "121.5"}}, nil
}

func (s *recordingSearcher) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func TestResolverCommitsAfterDebounce(t *testing.T) {
	searcher := &recordingSearcher{}
	r := NewResolver(searcher, zap.NewNop(), WithDebounce(5*time.Millisecond))
	defer r.Close()

	r.SetQuery("拉麵")

	_, searching := r.Results()
	assert.True(t, searching, "lookup pending right after SetQuery")

	require.Eventually(t, func() bool {
		results, searching := r.Results()
		return !searching && len(results) == 1
	}, time.Second, time.Millisecond)

	results, _ := r.Results()
	assert.Equal(t, "拉麵", results[0].Name)
	assert.Equal(t, []string{"拉麵"}, searcher.calls())
}

func TestResolverShortQueryClearsWithoutRequest(t *testing.T) {
	searcher := &recordingSearcher{}
	r := NewResolver(searcher, zap.NewNop(), WithDebounce(time.Millisecond))
	defer r.Close()

	r.SetQuery("拉麵")
	require.Eventually(t, func() bool {
		results, _ := r.Results()
		return len(results) == 1
	}, time.Second, time.Millisecond)

	// One rune is below the remote threshold: results clear immediately and
	// no request goes out.
	r.SetQuery("拉")
	results, searching := r.Results()
	assert.Nil(t, results)
	assert.False(t, searching)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"拉麵"}, searcher.calls())
}

func TestResolverCollapsesRapidEdits(t *testing.T) {
	searcher := &recordingSearcher{}
	r := NewResolver(searcher, zap.NewNop(), WithDebounce(30*time.Millisecond))
	defer r.Close()

	// Each edit lands inside the previous debounce window, so only the
	// final query reaches the searcher.
	r.SetQuery("隱")
	r.SetQuery("隱家")
	r.SetQuery("隱家拉")
	r.SetQuery("隱家拉麵")

	require.Eventually(t, func() bool {
		_, searching := r.Results()
		return !searching
	}, time.Second, time.Millisecond)

	assert.Equal(t, []string{"隱家拉麵"}, searcher.calls())
}

func TestResolverDropsStaleResults(t *testing.T) {
	release := make(chan struct{})
	searcher := searcherFunc(func(_ context.Context, query string) ([]geocode.Result, error) {
		if query == "old" {
			<-release
		}
		return []geocode.Result{{Name: query}}, nil
	})
	r := NewResolver(searcher, zap.NewNop(), WithDebounce(time.Millisecond))
	defer r.Close()

	r.SetQuery("old")
	// Give the old lookup time to start and block inside the searcher.
	time.Sleep(20 * time.Millisecond)

	r.SetQuery("new query")
	require.Eventually(t, func() bool {
		results, searching := r.Results()
		return !searching && len(results) == 1
	}, time.Second, time.Millisecond)

	// Unblock the stale request; its late results must not win.
	close(release)
	time.Sleep(20 * time.Millisecond)

	results, _ := r.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "new query", results[0].Name)
}

func TestResolverDegradesOnRemoteFailure(t *testing.T) {
	searcher := searcherFunc(func(context.Context, string) ([]geocode.Result, error) {
		return nil, errors.New("service unavailable")
	})
	r := NewResolver(searcher, zap.NewNop(), WithDebounce(time.Millisecond))
	defer r.Close()

	r.SetQuery("拉麵")
	require.Eventually(t, func() bool {
		_, searching := r.Results()
		return !searching
	}, time.Second, time.Millisecond)

	results, _ := r.Results()
	assert.Empty(t, results, "failure degrades to an empty remote set")
}

func TestResolverClose(t *testing.T) {
	searcher := &recordingSearcher{}
	r := NewResolver(searcher, zap.NewNop(), WithDebounce(30*time.Millisecond))

	r.SetQuery("拉麵")
	r.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, searcher.calls(), "pending lookup canceled by Close")

	_, searching := r.Results()
	assert.False(t, searching)
}
