// Package search merges local substring shop matches with debounced
// remote place-search results for a live query string.
package search

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/ramenreality/internal/geocode"
)

// DefaultDebounce is the quiescence window a query must survive unchanged
// before a remote request is issued.
const DefaultDebounce = 800 * time.Millisecond

// MinRemoteQueryLen is the minimum query length (in runes) for a remote
// lookup. Shorter queries clear pending remote results without a request.
const MinRemoteQueryLen = 2

// PlaceSearcher is the remote side of the resolver. *geocode.Client
// satisfies it.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]geocode.Result, error)
}

// Resolver owns the remote half of the search box. Each SetQuery restarts
// the debounce window and bumps a generation counter; only the callback
// belonging to the latest generation may commit results, so a stale
// request that completes late can never overwrite a newer query's results.
type Resolver struct {
	searcher PlaceSearcher
	logger   *zap.Logger
	debounce time.Duration

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	results    []geocode.Result
	searching  bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDebounce overrides the quiescence window. Used by tests.
func WithDebounce(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.debounce = d }
}

// NewResolver creates a resolver over the given remote searcher.
func NewResolver(searcher PlaceSearcher, logger *zap.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		searcher: searcher,
		logger:   logger,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetQuery records the current query string. Queries shorter than
// MinRemoteQueryLen clear the remote results immediately; anything longer
// schedules a remote lookup once the query has been quiescent for the
// debounce window. A newer SetQuery supersedes any pending or in-flight
// lookup's permission to commit.
func (r *Resolver) SetQuery(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if utf8.RuneCountInString(query) < MinRemoteQueryLen {
		r.results = nil
		r.searching = false
		return
	}

	gen := r.generation
	r.searching = true
	r.timer = time.AfterFunc(r.debounce, func() {
		r.lookup(gen, query)
	})
}

// Results returns the latest committed remote results and whether a
// lookup is pending or in flight.
func (r *Resolver) Results() ([]geocode.Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results, r.searching
}

// Close cancels any pending lookup. In-flight requests finish but their
// results are dropped.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.searching = false
}

// lookup performs the remote search for the given generation and commits
// the outcome only if that generation is still current. A failed request
// is logged and degrades to an empty remote set; local results are not
// the resolver's concern and stay unaffected.
func (r *Resolver) lookup(gen uint64, query string) {
	results, err := r.searcher.Search(context.Background(), query)
	if err != nil {
		r.logger.Warn("remote place search failed",
			zap.String("query", query),
			zap.Error(err))
		results = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		// A newer query started after this request was scheduled.
		return
	}
	r.results = results
	r.searching = false
	r.timer = nil
}
