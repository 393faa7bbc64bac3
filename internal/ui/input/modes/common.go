package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"adscout/internal/domain"
	"adscout/internal/ui/input/types"
)

// handleCommonKey handles the keys that behave the same whichever control
// has focus. Printable keys are never matched here so they reach the
// focused control.
func handleCommonKey(keys types.KeyMap, current types.Mode, msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, keys.Submit):
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, keys.Retry):
		// Retry is only offered from the error state
		if ctx.CanRetry() {
			return []types.Action{types.RetryAction{}}, true
		}
		return nil, true

	case key.Matches(msg, keys.SwitchFocus):
		next := types.ModeCountry
		if current == types.ModeCountry {
			next = types.ModeQuery
		}
		return []types.Action{types.ChangeModeAction{Mode: next}}, true

	case key.Matches(msg, keys.Advertisers):
		return []types.Action{types.SelectTabAction{Tab: domain.TabAdvertisers}}, true

	case key.Matches(msg, keys.Ads):
		return []types.Action{types.SelectTabAction{Tab: domain.TabAds}}, true

	case key.Matches(msg, keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, keys.ScrollUp):
		return scroll(ctx, "up")
	case key.Matches(msg, keys.ScrollDown):
		return scroll(ctx, "down")
	case key.Matches(msg, keys.PageUp):
		return scroll(ctx, "pageup")
	case key.Matches(msg, keys.PageDown):
		return scroll(ctx, "pagedown")
	}

	return nil, false
}

func scroll(ctx types.Context, direction string) ([]types.Action, bool) {
	if !ctx.ShowingResults() {
		return nil, true
	}
	return []types.Action{types.ScrollAction{Direction: direction}}, true
}
