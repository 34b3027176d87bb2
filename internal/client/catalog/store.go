// Package catalog holds the last-fetched product list and the search
// flow around it: a debounced dispatch for keystrokes and a single
// "current view" that is either the full catalog or the latest search
// result, never a mix.
package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rnand/qkart-v2/internal/client/api"
	"github.com/rnand/qkart-v2/internal/client/models"
	"github.com/rnand/qkart-v2/internal/debounce"
	"github.com/rnand/qkart-v2/internal/logging"
)

// DefaultSearchWindow is the quiet period after which a coalesced
// search input is dispatched.
const DefaultSearchWindow = 500 * time.Millisecond

// Store is the client's read model of the catalog.
//
// Overlapping fetches may complete in any order; every state change is
// tagged with a sequence number taken at dispatch time and a response
// older than the last applied one is discarded, so a slow early request
// can never overwrite the result of a later one.
type Store struct {
	client api.Client
	log    logging.Logger
	deb    *debounce.Debouncer
	window time.Duration

	mu          sync.Mutex
	view        []models.Product
	full        []models.Product
	emptySearch bool
	loaded      bool
	seq         uint64
	applied     uint64
}

// NewStore returns a Store dispatching debounced searches after window.
// A non-positive window falls back to DefaultSearchWindow.
func NewStore(client api.Client, window time.Duration, log logging.Logger) *Store {
	if window <= 0 {
		window = DefaultSearchWindow
	}
	return &Store{
		client: client,
		log:    log,
		deb:    debounce.New(),
		window: window,
	}
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// apply runs fn under the lock if seq is not older than the last applied
// update and reports whether it ran.
func (s *Store) apply(seq uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		return false
	}
	s.applied = seq
	fn()
	return true
}

// LoadAll fetches the full catalog and replaces the current view with
// it. On failure the store is left loading-complete but unchanged, so
// callers can render an empty state instead of spinning forever.
func (s *Store) LoadAll(ctx context.Context) ([]models.Product, error) {
	seq := s.begin()

	products, err := s.client.Products(ctx)
	if err != nil {
		s.apply(seq, func() { s.loaded = true })
		return nil, err
	}

	if !s.apply(seq, func() {
		s.view = products
		s.full = products
		s.emptySearch = false
		s.loaded = true
	}) {
		s.log.Warn(ctx, "discarding stale catalog response", "seq", seq)
	}
	return products, nil
}

// Search fetches the catalog filtered by query and makes the result the
// current view. A blank query clears the search and restores full
// catalog semantics via LoadAll. A zero-length result raises the
// empty-search flag; so does a failed request, which additionally
// clears the view so stale results are never shown after an error.
func (s *Store) Search(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.LoadAll(ctx)
	}

	seq := s.begin()

	products, err := s.client.SearchProducts(ctx, query)
	if err != nil {
		s.apply(seq, func() {
			s.view = nil
			s.emptySearch = true
		})
		return nil, err
	}

	if !s.apply(seq, func() {
		s.view = products
		s.emptySearch = len(products) == 0
	}) {
		s.log.Warn(ctx, "discarding stale search response", "seq", seq, "query", query)
	}
	return products, nil
}

// QueueSearch coalesces rapid successive calls: the search request is
// dispatched only after the debounce window elapses without a newer
// query, and only the latest query survives a burst. The optional done
// callback runs after the dispatched search settles.
func (s *Store) QueueSearch(ctx context.Context, query string, done func(error)) {
	s.deb.Schedule(query, s.window, func(value string) {
		_, err := s.Search(ctx, value)
		if err != nil {
			s.log.Warn(ctx, "search failed", "query", value, "error", err)
		}
		if done != nil {
			done(err)
		}
	})
}

// Close cancels any pending debounced dispatch.
func (s *Store) Close() {
	s.deb.Stop()
}

// View returns a copy of the current view list: the full catalog or the
// latest search result, whichever was applied last.
func (s *Store) View() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.view...)
}

// Full returns a copy of the last successfully loaded full catalog,
// unaffected by any active search filter.
func (s *Store) Full() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.full...)
}

// EmptySearch reports whether the last applied search yielded nothing,
// distinct from "not yet loaded".
func (s *Store) EmptySearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emptySearch
}

// Loaded reports whether at least one catalog fetch has completed,
// successfully or not.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
