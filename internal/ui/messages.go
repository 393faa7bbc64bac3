package ui

import (
	"adscout/internal/eventbus"
	"adscout/internal/ui/services/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultMsg carries a settled search back to the event loop
type searchResultMsg struct {
	resp search.Response
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg is sent before an external pager takes the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg is sent once the pager has exited
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status bar message
type clearStatusMsg struct{}
