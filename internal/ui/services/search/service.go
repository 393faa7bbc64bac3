package search

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"adscout/internal/api"
	"adscout/internal/domain"
	"adscout/internal/eventbus"
)

// Service is the query controller. It owns the search text, the selected
// country and tab, and the SearchState machine.
//
// Every dispatch gets a monotonically increasing sequence number. A
// response is applied only when it answers the latest dispatch, so an
// older request that settles late can never overwrite newer state.
//
// Service is not safe for concurrent use; all methods except Execute are
// meant to be called from the UI event loop.
type Service struct {
	state    State
	seq      uint64
	searcher api.Searcher
	bus      eventbus.EventBus
}

// NewService creates a new search service. bus may be nil.
func NewService(searcher api.Searcher, bus eventbus.EventBus, country string) *Service {
	if country == "" {
		country = domain.DefaultCountry
	}
	return &Service{
		state: State{
			Country: country,
			Tab:     domain.TabAdvertisers,
			Status:  StatusIdle,
		},
		searcher: searcher,
		bus:      bus,
	}
}

// State returns a copy of the current state
func (s *Service) State() State {
	st := s.state
	if st.Results != nil {
		st.Results = append([]domain.Advertiser(nil), st.Results...)
	}
	return st
}

// Loading reports whether the latest dispatched request is outstanding
func (s *Service) Loading() bool {
	return s.state.Status == StatusLoading
}

// LatestSeq returns the sequence number of the latest dispatch
func (s *Service) LatestSeq() uint64 {
	return s.seq
}

// UpdateQueryText replaces the search text
func (s *Service) UpdateQueryText(text string) {
	s.state.Query = text
}

// UpdateCountry replaces the selected country. Codes outside
// domain.SupportedCountries are accepted and sent to the API unchanged.
func (s *Service) UpdateCountry(code string) {
	if code == s.state.Country {
		return
	}
	s.state.Country = code
	s.publish(eventbus.CountryChangedEvent{Code: code})
}

// SelectTab changes the active tab. It never touches the search state.
func (s *Service) SelectTab(tab domain.Tab) {
	if tab == s.state.Tab {
		return
	}
	s.state.Tab = tab
	s.publish(eventbus.TabChangedEvent{Tab: tab})
}

// Submit validates the current query and, when it is non-empty after
// trimming, moves to Loading and returns the request to execute.
// An empty query is a silent no-op.
func (s *Service) Submit() (Request, bool) {
	q := domain.SearchQuery{Text: s.state.Query, CountryCode: s.state.Country}
	if !q.Valid() {
		return Request{}, false
	}

	s.seq++
	req := Request{
		Seq:     s.seq,
		Query:   q.Trimmed(),
		Country: q.CountryCode,
	}

	s.state.Status = StatusLoading
	s.state.Message = ""
	s.state.Results = nil
	s.state.Submitted = domain.SearchQuery{Text: req.Query, CountryCode: req.Country}

	log.WithFields(log.Fields{
		"seq":     req.Seq,
		"query":   req.Query,
		"country": req.Country,
	}).Info("Search submitted")
	s.publish(eventbus.SearchRequestedEvent{Seq: req.Seq, Query: req.Query, Country: req.Country})

	return req, true
}

// Retry re-runs Submit with the current text and country. It is only
// offered from the Error state but behaves like Submit anywhere.
func (s *Service) Retry() (Request, bool) {
	return s.Submit()
}

// Execute performs the request against the searcher. It only reads
// immutable fields and may run off the event loop. A panicking searcher
// is turned into an error so the request always settles.
func (s *Service) Execute(ctx context.Context, req Request) (resp Response) {
	resp.Request = req
	defer func() {
		if r := recover(); r != nil {
			resp.Results = nil
			resp.Err = fmt.Errorf("search panicked: %v", r)
		}
	}()

	if s.searcher == nil {
		resp.Err = fmt.Errorf("no search backend configured")
		return resp
	}

	resp.Results, resp.Err = s.searcher.SearchAdvertisers(ctx, req.Query, req.Country)
	return resp
}

// Complete applies a settled response. It returns false when the response
// answers a superseded request and was dropped.
func (s *Service) Complete(resp Response) bool {
	if resp.Request.Seq != s.seq || s.state.Status != StatusLoading {
		log.WithFields(log.Fields{
			"seq":    resp.Request.Seq,
			"latest": s.seq,
		}).Info("Dropping stale search response")
		s.publish(eventbus.StaleResponseDroppedEvent{Seq: resp.Request.Seq, Latest: s.seq})
		return false
	}

	fields := log.Fields{
		"seq":     resp.Request.Seq,
		"query":   resp.Request.Query,
		"country": resp.Request.Country,
	}

	if resp.Err != nil {
		msg := resp.Err.Error()
		if msg == "" {
			msg = "unknown error"
		}
		s.state.Status = StatusError
		s.state.Message = msg
		s.state.Results = nil

		log.WithFields(fields).WithField("error", msg).Warn("Search failed")
		s.publish(eventbus.SearchFailedEvent{
			Seq:     resp.Request.Seq,
			Query:   resp.Request.Query,
			Country: resp.Request.Country,
			Message: msg,
		})
		return true
	}

	results := resp.Results
	if results == nil {
		results = []domain.Advertiser{}
	}
	s.state.Status = StatusSuccess
	s.state.Message = ""
	s.state.Results = results

	log.WithFields(fields).WithField("results", len(results)).Info("Search completed")
	s.publish(eventbus.SearchCompletedEvent{
		Seq:     resp.Request.Seq,
		Query:   resp.Request.Query,
		Country: resp.Request.Country,
		Results: len(results),
	})
	return true
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
