package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adscout/internal/api"
	"adscout/internal/domain"
	"adscout/internal/eventbus"
)

type call struct {
	query   string
	country string
}

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []call
	results []domain.Advertiser
	err     error
	panicV  interface{}
}

func (f *fakeSearcher) SearchAdvertisers(ctx context.Context, query, countryCode string) ([]domain.Advertiser, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{query: query, country: countryCode})
	f.mu.Unlock()
	if f.panicV != nil {
		panic(f.panicV)
	}
	return f.results, f.err
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func int64p(v int64) *int64 { return &v }

func TestSubmitEmptyQueryIsNoop(t *testing.T) {
	fake := &fakeSearcher{}
	s := NewService(fake, nil, "")

	for _, text := range []string{"", "   ", "\t\n"} {
		s.UpdateQueryText(text)
		_, ok := s.Submit()
		assert.False(t, ok, "query %q", text)
		assert.Equal(t, StatusIdle, s.State().Status)
		assert.False(t, s.Loading())
	}
	assert.Zero(t, s.LatestSeq())
	assert.Zero(t, fake.callCount())
}

func TestSubmitMovesToLoading(t *testing.T) {
	s := NewService(&fakeSearcher{}, nil, "US")
	s.UpdateQueryText("  Nike ")

	req, ok := s.Submit()
	require.True(t, ok)
	assert.Equal(t, Request{Seq: 1, Query: "Nike", Country: "US"}, req)
	assert.True(t, s.Loading())
	assert.Equal(t, domain.SearchQuery{Text: "Nike", CountryCode: "US"}, s.State().Submitted)
}

func TestSuccessfulSearch(t *testing.T) {
	fake := &fakeSearcher{results: []domain.Advertiser{
		{ID: "1", Name: "Acme", Likes: int64p(1500), IGFollowers: int64p(0)},
	}}
	s := NewService(fake, nil, "US")
	s.UpdateQueryText("acme")

	req, ok := s.Submit()
	require.True(t, ok)
	require.True(t, s.Complete(s.Execute(context.Background(), req)))

	st := s.State()
	assert.Equal(t, StatusSuccess, st.Status)
	assert.False(t, s.Loading())
	require.Len(t, st.Results, 1)
	assert.Equal(t, "Acme", st.Results[0].Name)
	assert.Equal(t, []call{{query: "acme", country: "US"}}, fake.calls)
}

func TestAPIErrorSearch(t *testing.T) {
	fake := &fakeSearcher{err: &api.APIError{Message: "rate limited"}}
	s := NewService(fake, nil, "US")
	s.UpdateQueryText("acme")

	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))

	st := s.State()
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "rate limited", st.Message)
	assert.False(t, s.Loading())
}

func TestTransportErrorSearch(t *testing.T) {
	fake := &fakeSearcher{err: errors.New("connection refused")}
	s := NewService(fake, nil, "US")
	s.UpdateQueryText("acme")

	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))

	assert.Equal(t, StatusError, s.State().Status)
	assert.Equal(t, "connection refused", s.State().Message)
	assert.False(t, s.Loading())
}

func TestPanickingSearcherSettles(t *testing.T) {
	s := NewService(&fakeSearcher{panicV: "boom"}, nil, "US")
	s.UpdateQueryText("acme")

	req, _ := s.Submit()
	resp := s.Execute(context.Background(), req)
	require.Error(t, resp.Err)

	s.Complete(resp)
	assert.False(t, s.Loading())
	assert.Contains(t, s.State().Message, "boom")
}

func TestNilSearcherSettles(t *testing.T) {
	s := NewService(nil, nil, "US")
	s.UpdateQueryText("acme")

	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))
	assert.Equal(t, StatusError, s.State().Status)
}

func TestNilResultsBecomeEmptySuccess(t *testing.T) {
	s := NewService(&fakeSearcher{}, nil, "US")
	s.UpdateQueryText("nobody")

	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))

	st := s.State()
	assert.Equal(t, StatusSuccess, st.Status)
	assert.NotNil(t, st.Results)
	assert.Empty(t, st.Results)
}

func TestStaleResponseIsDropped(t *testing.T) {
	s := NewService(&fakeSearcher{}, nil, "US")

	s.UpdateQueryText("first")
	first, _ := s.Submit()
	s.UpdateQueryText("second")
	second, _ := s.Submit()

	// the second request settles first
	applied := s.Complete(Response{Request: second, Results: []domain.Advertiser{{Name: "Second"}}})
	require.True(t, applied)

	// the first one arrives late and must not overwrite
	applied = s.Complete(Response{Request: first, Results: []domain.Advertiser{{Name: "First"}}})
	assert.False(t, applied)

	st := s.State()
	assert.Equal(t, StatusSuccess, st.Status)
	require.Len(t, st.Results, 1)
	assert.Equal(t, "Second", st.Results[0].Name)
}

func TestLoadingHeldUntilLatestSettles(t *testing.T) {
	s := NewService(&fakeSearcher{}, nil, "US")

	s.UpdateQueryText("first")
	first, _ := s.Submit()
	s.UpdateQueryText("second")
	second, _ := s.Submit()

	assert.False(t, s.Complete(Response{Request: first, Err: errors.New("late")}))
	assert.True(t, s.Loading(), "latest request is still outstanding")

	assert.True(t, s.Complete(Response{Request: second}))
	assert.False(t, s.Loading())
}

func TestDuplicateCompletionIgnored(t *testing.T) {
	s := NewService(&fakeSearcher{}, nil, "US")
	s.UpdateQueryText("acme")
	req, _ := s.Submit()

	assert.True(t, s.Complete(Response{Request: req, Err: errors.New("first")}))
	assert.False(t, s.Complete(Response{Request: req}))
	assert.Equal(t, StatusError, s.State().Status)
}

func TestRetryReissuesSameSearch(t *testing.T) {
	fake := &fakeSearcher{err: errors.New("timeout")}
	s := NewService(fake, nil, "PL")
	s.UpdateQueryText("acme")

	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))
	require.Equal(t, StatusError, s.State().Status)

	fake.err = nil
	retry, ok := s.Retry()
	require.True(t, ok)
	assert.Equal(t, req.Query, retry.Query)
	assert.Equal(t, req.Country, retry.Country)
	assert.Greater(t, retry.Seq, req.Seq)
	assert.Empty(t, s.State().Message, "error cleared on dispatch")

	s.Complete(s.Execute(context.Background(), retry))
	assert.Equal(t, StatusSuccess, s.State().Status)
	assert.Equal(t, 2, fake.callCount())
}

func TestCountryChangeDoesNotTouchSearchState(t *testing.T) {
	fake := &fakeSearcher{}
	s := NewService(fake, nil, "US")

	s.UpdateCountry("PL")
	assert.Equal(t, StatusIdle, s.State().Status)
	assert.Equal(t, "PL", s.State().Country)

	s.UpdateQueryText("acme")
	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))
	before := s.State()

	s.UpdateCountry("GB")
	after := s.State()
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Results, after.Results)
	assert.Equal(t, 1, fake.callCount())
}

func TestUnknownCountryForwarded(t *testing.T) {
	fake := &fakeSearcher{}
	s := NewService(fake, nil, "US")
	s.UpdateCountry("DE")
	s.UpdateQueryText("acme")

	req, ok := s.Submit()
	require.True(t, ok)
	assert.Equal(t, "DE", req.Country)
}

func TestSelectTabDoesNotTouchSearchState(t *testing.T) {
	s := NewService(&fakeSearcher{}, nil, "US")
	s.UpdateQueryText("acme")
	s.Submit()

	s.SelectTab(domain.TabAds)
	assert.Equal(t, domain.TabAds, s.State().Tab)
	assert.True(t, s.Loading())
}

func TestStateReturnsCopy(t *testing.T) {
	s := NewService(&fakeSearcher{results: []domain.Advertiser{{Name: "Acme"}}}, nil, "US")
	s.UpdateQueryText("acme")
	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))

	st := s.State()
	st.Results[0].Name = "mutated"
	assert.Equal(t, "Acme", s.State().Results[0].Name)
}

func TestLifecycleEventsPublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	requested := make(chan eventbus.SearchRequestedEvent, 1)
	completed := make(chan eventbus.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		requested <- e.(eventbus.SearchRequestedEvent)
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		completed <- e.(eventbus.SearchCompletedEvent)
	})

	s := NewService(&fakeSearcher{results: []domain.Advertiser{{Name: "A"}, {Name: "B"}}}, bus, "GB")
	s.UpdateQueryText("acme")
	req, _ := s.Submit()
	s.Complete(s.Execute(context.Background(), req))

	select {
	case e := <-requested:
		assert.Equal(t, eventbus.SearchRequestedEvent{Seq: 1, Query: "acme", Country: "GB"}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("no SearchRequested event")
	}
	select {
	case e := <-completed:
		assert.Equal(t, 2, e.Results)
	case <-time.After(2 * time.Second):
		t.Fatal("no SearchCompleted event")
	}
}
