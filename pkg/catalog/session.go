package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/Sternrassler/pokeapi-catalog/pkg/logging"
	"github.com/Sternrassler/pokeapi-catalog/pkg/pagination"
	"github.com/rs/zerolog"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrStale is returned to a caller whose fetch was superseded by a
	// newer Apply or LoadMore. Its result is discarded.
	ErrStale = errors.New("stale catalog result discarded")

	// ErrNoQuery is returned by LoadMore before a first page was loaded or
	// while a fetch is in flight.
	ErrNoQuery = errors.New("no loaded catalog query")
)

// PageFetcher fetches one catalog page. *Fetcher implements it.
type PageFetcher interface {
	Fetch(ctx context.Context, dim Dimension, value string, filters FilterSet) (*Page, error)
}

// Query identifies what a Session is showing.
type Query struct {
	Dimension Dimension
	Value     string
	Filters   FilterSet
}

// Snapshot is a point-in-time copy of a Session.
type Snapshot struct {
	State   State
	Query   Query
	Items   []Item
	HasMore bool
	Err     error
	// Generation increases with every Apply and LoadMore.
	Generation uint64
}

// Session accumulates pages of one query. A new Apply supersedes any fetch
// in flight: the old fetch is cancelled and its result discarded.
type Session struct {
	fetcher PageFetcher
	logger  zerolog.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      State
	query      Query
	items      *pagination.Accumulator[int, Item]
	pages      int
	hasMore    bool
	err        error
}

// NewSession creates an idle session.
func NewSession(fetcher PageFetcher) *Session {
	return &Session{
		fetcher: fetcher,
		logger:  logging.NewLogger("catalog-session"),
		items:   pagination.NewAccumulator(func(it Item) int { return it.ID }),
	}
}

// Apply starts a new query at page 1, replacing all accumulated items.
func (s *Session) Apply(ctx context.Context, dim Dimension, value string, filters FilterSet) (Snapshot, error) {
	filters.Page = 1
	q := Query{Dimension: dim, Value: value, Filters: filters}

	s.mu.Lock()
	gen, fetchCtx := s.begin(ctx)
	s.query = q
	s.items.Reset()
	s.pages = 0
	s.hasMore = false
	s.mu.Unlock()

	page, err := s.fetcher.Fetch(fetchCtx, dim, value, q.Filters)
	return s.finish(gen, q, page, err)
}

// LoadMore fetches the next page of the current query and appends the items
// not seen on earlier pages. With nothing more to load it returns the
// current snapshot. After a failed LoadMore the same page is retried.
func (s *Session) LoadMore(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.state == StateLoading || s.pages == 0 {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrNoQuery
	}
	if s.state == StateLoaded && !s.hasMore {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}

	q := s.query
	q.Filters = q.Filters.NextPage()
	gen, fetchCtx := s.begin(ctx)
	s.mu.Unlock()

	page, err := s.fetcher.Fetch(fetchCtx, q.Dimension, q.Value, q.Filters)
	return s.finish(gen, q, page, err)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close cancels any fetch in flight. The cancelled caller gets ErrStale and
// the session keeps the pages loaded so far.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.generation++
	if s.state == StateLoading {
		s.state = StateIdle
		if s.pages > 0 {
			s.state = StateLoaded
		}
	}
}

// begin opens a new generation. Must be called with mu held.
func (s *Session) begin(ctx context.Context) (uint64, context.Context) {
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateLoading
	s.err = nil
	return s.generation, fetchCtx
}

func (s *Session) finish(gen uint64, q Query, page *Page, err error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Warn().
			Uint64("generation", gen).
			Uint64("current", s.generation).
			Msg("Discarding stale catalog result")
		return s.snapshotLocked(), ErrStale
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if err != nil {
		s.state = StateError
		s.err = err
		return s.snapshotLocked(), err
	}

	s.query = q
	s.items.Append(page.Items...)
	s.pages++
	s.hasMore = page.HasMore
	s.state = StateLoaded
	return s.snapshotLocked(), nil
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:      s.state,
		Query:      s.query,
		Items:      s.items.Items(),
		HasMore:    s.hasMore,
		Err:        s.err,
		Generation: s.generation,
	}
}
