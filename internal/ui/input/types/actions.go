package types

import "adscout/internal/domain"

// Search actions
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Selector actions
type CycleCountryAction struct {
	Delta int // +1 next, -1 previous
}

func (a CycleCountryAction) Type() string { return "cycle_country" }

type SelectTabAction struct {
	Tab domain.Tab
}

func (a SelectTabAction) Type() string { return "select_tab" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// View actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home"
}

func (a ScrollAction) Type() string { return "scroll" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
