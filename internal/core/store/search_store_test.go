package store

import (
	"TUI_video_browser/infrastructure/logger"
	"TUI_video_browser/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	query, token string
}

type fetchResult struct {
	page domain.VideoPage
	err  error
}

// fakeFetcher answers calls from a queue. When gate is set, each call blocks
// until a value is sent on it.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []fetchCall
	results []fetchResult
	gate    chan struct{}
	started chan struct{}
}

func (f *fakeFetcher) push(page domain.VideoPage, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, fetchResult{page: page, err: err})
}

func (f *fakeFetcher) FetchVideos(ctx context.Context, query, pageToken string) (domain.VideoPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{query: query, token: pageToken})
	var res fetchResult
	if len(f.results) > 0 {
		res = f.results[0]
		f.results = f.results[1:]
	}
	gate, started := f.gate, f.started
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return res.page, res.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func videos(prefix string, n int) []domain.VideoSummary {
	out := make([]domain.VideoSummary, n)
	for i := range out {
		out[i] = domain.VideoSummary{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return out
}

func newTestStore(f *fakeFetcher) *SearchStore {
	return NewSearchStore(f, logger.NewNopLogger())
}

func TestInitialState(t *testing.T) {
	s := newTestStore(&fakeFetcher{})

	st := s.State()
	assert.Equal(t, "", st.Query)
	assert.Empty(t, st.Results)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Empty(t, st.NextPageToken)
	assert.False(t, s.HasMore())
}

func TestSetQuery_ResetsSynchronously(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	f.push(domain.VideoPage{Results: videos("old", 3), NextPageToken: "OLD"}, nil)
	require.NoError(t, s.FetchNextPage(context.Background()))
	require.Len(t, s.State().Results, 3)

	s.SetQuery("new search")

	st := s.State()
	assert.Equal(t, "new search", st.Query)
	assert.Empty(t, st.Results)
	assert.Empty(t, st.NextPageToken)
	assert.False(t, st.Loading)
	assert.Equal(t, 1, f.callCount(), "SetQuery must not fetch")
}

func TestEndToEndPagination(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	ctx := context.Background()

	s.SetQuery("cats")

	f.push(domain.VideoPage{Results: videos("p1", 20), NextPageToken: "T1"}, nil)
	require.NoError(t, s.FetchNextPage(ctx))
	st := s.State()
	assert.Len(t, st.Results, 20)
	assert.Equal(t, "T1", st.NextPageToken)
	assert.True(t, s.HasMore())

	f.push(domain.VideoPage{Results: videos("p2", 15)}, nil)
	require.NoError(t, s.FetchNextPage(ctx))
	st = s.State()
	assert.Len(t, st.Results, 35)
	assert.Empty(t, st.NextPageToken)
	assert.False(t, s.HasMore())

	// arrival order is preserved
	assert.Equal(t, "p1-0", st.Results[0].ID)
	assert.Equal(t, "p1-19", st.Results[19].ID)
	assert.Equal(t, "p2-0", st.Results[20].ID)

	// the second call used the token from the first page
	assert.Equal(t, []fetchCall{{"cats", ""}, {"cats", "T1"}}, f.calls)

	// no more pages: nothing goes out
	require.NoError(t, s.FetchNextPage(ctx))
	assert.Equal(t, 2, f.callCount())
}

func TestAppendInvariant(t *testing.T) {
	sizes := []int{3, 0, 7, 1}
	f := &fakeFetcher{}
	s := newTestStore(f)
	s.SetQuery("q")

	total := 0
	for i, k := range sizes {
		token := fmt.Sprintf("T%d", i+1)
		if i == len(sizes)-1 {
			token = ""
		}
		f.push(domain.VideoPage{Results: videos(fmt.Sprintf("p%d", i), k), NextPageToken: token}, nil)
		require.NoError(t, s.FetchNextPage(context.Background()))
		total += k
		assert.Len(t, s.State().Results, total)
	}
	assert.Equal(t, "p3-0", s.State().Results[total-1].ID)
}

func TestFetchFailure_PreservesState(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	s.SetQuery("cats")
	f.push(domain.VideoPage{Results: videos("p1", 4), NextPageToken: "T1"}, nil)
	require.NoError(t, s.FetchNextPage(context.Background()))
	before := s.State()

	boom := errors.New("network down")
	f.push(domain.VideoPage{}, boom)
	err := s.FetchNextPage(context.Background())
	assert.ErrorIs(t, err, boom)

	after := s.State()
	assert.False(t, after.Loading)
	assert.Equal(t, "network down", after.Error)
	assert.Equal(t, before.Results, after.Results)
	assert.Equal(t, "T1", after.NextPageToken)

	// the next attempt clears the error and retries with the same token
	f.push(domain.VideoPage{Results: videos("p2", 2)}, nil)
	require.NoError(t, s.FetchNextPage(context.Background()))
	assert.Empty(t, s.State().Error)
	assert.Equal(t, fetchCall{"cats", "T1"}, f.calls[2])
	assert.Len(t, s.State().Results, 6)
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestFetchFailure_FallbackMessage(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	f.push(domain.VideoPage{}, emptyError{})

	require.Error(t, s.FetchNextPage(context.Background()))
	assert.Equal(t, "Failed to fetch videos", s.State().Error)
}

func TestFirstFetchFailure_AllowsRetry(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	s.SetQuery("cats")
	f.push(domain.VideoPage{}, errors.New("boom"))
	require.Error(t, s.FetchNextPage(context.Background()))

	f.push(domain.VideoPage{Results: videos("p1", 1)}, nil)
	require.NoError(t, s.FetchNextPage(context.Background()))
	assert.Equal(t, 2, f.callCount())
	assert.Len(t, s.State().Results, 1)
}

func TestConcurrentFetch_IsSuppressed(t *testing.T) {
	f := &fakeFetcher{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	s := newTestStore(f)
	s.SetQuery("cats")
	f.push(domain.VideoPage{Results: videos("p1", 5), NextPageToken: "T1"}, nil)

	done := make(chan error, 1)
	go func() { done <- s.FetchNextPage(context.Background()) }()
	<-f.started

	assert.True(t, s.State().Loading)
	assert.ErrorIs(t, s.FetchNextPage(context.Background()), ErrFetchInFlight)

	f.gate <- struct{}{}
	require.NoError(t, <-done)

	assert.Equal(t, 1, f.callCount())
	assert.Len(t, s.State().Results, 5)
	assert.False(t, s.State().Loading)
}

func TestQueryChangeDuringFetch_DiscardsLateResponse(t *testing.T) {
	f := &fakeFetcher{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	s := newTestStore(f)
	s.SetQuery("cats")
	f.push(domain.VideoPage{Results: videos("cats", 5), NextPageToken: "T1"}, nil)

	done := make(chan error, 1)
	go func() { done <- s.FetchNextPage(context.Background()) }()
	<-f.started

	s.SetQuery("dogs")
	assert.False(t, s.State().Loading)

	f.gate <- struct{}{}
	assert.ErrorIs(t, <-done, ErrStaleResponse)

	st := s.State()
	assert.Equal(t, "dogs", st.Query)
	assert.Empty(t, st.Results)
	assert.Empty(t, st.NextPageToken)

	// the new query can fetch right away
	f.push(domain.VideoPage{Results: videos("dogs", 2)}, nil)
	go func() { done <- s.FetchNextPage(context.Background()) }()
	<-f.started
	f.gate <- struct{}{}
	require.NoError(t, <-done)
	assert.Len(t, s.State().Results, 2)
	assert.Equal(t, "dogs-0", s.State().Results[0].ID)
}

func TestSubscribe(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)

	var mu sync.Mutex
	var seen []domain.SearchPageState
	unsubscribe := s.Subscribe(func(st domain.SearchPageState) {
		mu.Lock()
		seen = append(seen, st)
		mu.Unlock()
	})

	s.SetQuery("cats")
	f.push(domain.VideoPage{Results: videos("p1", 2), NextPageToken: "T1"}, nil)
	require.NoError(t, s.FetchNextPage(context.Background()))

	mu.Lock()
	require.Len(t, seen, 3)
	assert.Equal(t, "cats", seen[0].Query)
	assert.True(t, seen[1].Loading)
	assert.False(t, seen[2].Loading)
	assert.Len(t, seen[2].Results, 2)
	mu.Unlock()

	unsubscribe()
	s.SetQuery("dogs")

	mu.Lock()
	assert.Len(t, seen, 3)
	mu.Unlock()
}

func TestStateIsACopy(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	f.push(domain.VideoPage{Results: videos("p1", 2)}, nil)
	require.NoError(t, s.FetchNextPage(context.Background()))

	st := s.State()
	st.Results[0].ID = "mutated"

	assert.Equal(t, "p1-0", s.State().Results[0].ID)
}
