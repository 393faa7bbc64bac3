package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode, i.e. which control has focus
type Mode int

const (
	ModeQuery Mode = iota
	ModeCountry
)

func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "query"
	case ModeCountry:
		return "country"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// CanRetry reports whether the last search ended in an error
	CanRetry() bool
	// ShowingResults reports whether a result region is on screen
	ShowingResults() bool
	// CurrentCountry returns the selected country code
	CurrentCountry() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
