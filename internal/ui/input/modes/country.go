package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"adscout/internal/ui/input/types"
)

// CountryMode is active while the country selector has focus
type CountryMode struct {
	keys types.KeyMap
}

func NewCountryMode(keys types.KeyMap) *CountryMode {
	return &CountryMode{keys: keys}
}

func (m *CountryMode) Name() string {
	return "country"
}

func (m *CountryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *CountryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CountryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := handleCommonKey(m.keys, types.ModeCountry, msg, ctx); ok {
		return actions, true
	}

	switch {
	case key.Matches(msg, m.keys.PrevCountry):
		return []types.Action{types.CycleCountryAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.NextCountry):
		return []types.Action{types.CycleCountryAction{Delta: 1}}, true
	}

	// The selector swallows everything else
	return nil, true
}
