package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested      EventType = "SearchRequested"
	EventSearchCompleted      EventType = "SearchCompleted"
	EventSearchFailed         EventType = "SearchFailed"
	EventStaleResponseDropped EventType = "StaleResponseDropped"
	EventCountryChanged       EventType = "CountryChanged"
	EventTabChanged           EventType = "TabChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a search is dispatched
type SearchRequestedEvent struct {
	Seq     uint64
	Query   string
	Country string
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the latest search succeeds
type SearchCompletedEvent struct {
	Seq     uint64
	Query   string
	Country string
	Results int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the latest search ends in an error
type SearchFailedEvent struct {
	Seq     uint64
	Query   string
	Country string
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// StaleResponseDroppedEvent is emitted when a superseded request settles
type StaleResponseDroppedEvent struct {
	Seq    uint64
	Latest uint64
}

func (e StaleResponseDroppedEvent) Type() EventType { return EventStaleResponseDropped }

// CountryChangedEvent is emitted when the selector moves
type CountryChangedEvent struct {
	Code string
}

func (e CountryChangedEvent) Type() EventType { return EventCountryChanged }

// TabChangedEvent is emitted when the active tab changes
type TabChangedEvent struct {
	Tab Tab
}

func (e TabChangedEvent) Type() EventType { return EventTabChanged }
