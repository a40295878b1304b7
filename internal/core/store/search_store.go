package store

import (
	"TUI_video_browser/internal/core/domain"
	"TUI_video_browser/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"sync"
)

const defaultFetchError = "Failed to fetch videos"

var (
	// ErrFetchInFlight is returned when a page for the current query is already being fetched.
	ErrFetchInFlight = errors.New("a fetch for this query is already in flight")
	// ErrStaleResponse is returned when the query changed while the fetch was running.
	ErrStaleResponse = errors.New("query changed while the fetch was in flight")
)

// PageFetcher is the strict search call the store drives.
type PageFetcher interface {
	FetchVideos(ctx context.Context, query, pageToken string) (domain.VideoPage, error)
}

// SearchStore owns the search state of one session: the query, the results
// accumulated for it and the token for the next page. Create one per session.
type SearchStore struct {
	fetcher PageFetcher
	log     ports.LoggerPort

	mu    sync.Mutex
	state domain.SearchPageState

	// generation changes on every SetQuery; responses from older generations are dropped
	generation uint64
	inFlight   bool
	fetched    bool

	subscribers map[int]func(domain.SearchPageState)
	nextSubID   int
}

func NewSearchStore(fetcher PageFetcher, logger ports.LoggerPort) *SearchStore {
	return &SearchStore{
		fetcher:     fetcher,
		log:         logger.With("store"),
		state:       domain.SearchPageState{Results: []domain.VideoSummary{}},
		subscribers: make(map[int]func(domain.SearchPageState)),
	}
}

// State returns a copy of the current state.
func (s *SearchStore) State() domain.SearchPageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *SearchStore) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasMore()
}

// Subscribe registers fn to receive a copy of the state after every change.
// The returned function removes the subscription.
func (s *SearchStore) Subscribe(fn func(domain.SearchPageState)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// SetQuery switches to a new query and drops everything fetched so far. It
// does not fetch; callers follow up with FetchNextPage.
func (s *SearchStore) SetQuery(q string) {
	s.mu.Lock()
	s.generation++
	s.inFlight = false
	s.fetched = false
	s.state = domain.SearchPageState{
		Query:   q,
		Results: []domain.VideoSummary{},
	}
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("Query set to %q", q))
	notify(subs, snapshot)
}

// FetchNextPage fetches the first page for the current query, or the next one
// using the stored token, and appends it to the results.
//
// It does nothing once the last page has arrived, and refuses to start a second
// fetch while one is running for the same query. A response that arrives after
// the query changed is discarded.
func (s *SearchStore) FetchNextPage(ctx context.Context) error {
	s.mu.Lock()
	if s.fetched && s.state.NextPageToken == "" {
		s.mu.Unlock()
		return nil
	}
	if s.inFlight {
		s.mu.Unlock()
		s.log.Warning("Fetch ignored: another fetch is in flight")
		return ErrFetchInFlight
	}

	generation := s.generation
	query := s.state.Query
	token := s.state.NextPageToken

	s.inFlight = true
	s.state.Loading = true
	s.state.Error = ""
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, snapshot)

	page, err := s.fetcher.FetchVideos(ctx, query, token)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.log.Warning(fmt.Sprintf("Discarding response for stale query %q", query))
		return ErrStaleResponse
	}

	s.inFlight = false
	s.state.Loading = false

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = defaultFetchError
		}
		s.state.Error = msg
		snapshot, subs = s.snapshotLocked()
		s.mu.Unlock()

		s.log.Error("Fetch page failed", err)
		notify(subs, snapshot)
		return err
	}

	s.fetched = true
	s.state.Results = append(s.state.Results, page.Results...)
	s.state.NextPageToken = page.NextPageToken
	snapshot, subs = s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("Fetched %d videos for %q (total %d, more=%t)",
		len(page.Results), query, len(snapshot.Results), snapshot.HasMore()))
	notify(subs, snapshot)

	return nil
}

func (s *SearchStore) snapshotLocked() (domain.SearchPageState, []func(domain.SearchPageState)) {
	subs := make([]func(domain.SearchPageState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return s.state.Clone(), subs
}

func notify(subs []func(domain.SearchPageState), state domain.SearchPageState) {
	for _, fn := range subs {
		fn(state.Clone())
	}
}
