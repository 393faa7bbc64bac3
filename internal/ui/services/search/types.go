package search

import (
	"adscout/internal/domain"
)

// Status is the lifecycle state of the latest submitted search
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// State holds the query controller state. Exactly one Status holds at a
// time; Message is only meaningful for StatusError and Results only for
// StatusSuccess.
type State struct {
	Query   string     // current search text, untrimmed
	Country string     // selected country code, forwarded as-is
	Tab     domain.Tab // active tab

	Status  Status
	Message string
	Results []domain.Advertiser

	Submitted domain.SearchQuery // last dispatched query, trimmed
}

// Request is one dispatched search
type Request struct {
	Seq     uint64
	Query   string
	Country string
}

// Response is the settled outcome of a Request
type Response struct {
	Request Request
	Results []domain.Advertiser
	Err     error
}
