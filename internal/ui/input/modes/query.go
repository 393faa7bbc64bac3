package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"adscout/internal/ui/input/types"
)

// QueryMode is active while the search box has focus. Keys it does not
// consume are forwarded to the text input by the handler.
type QueryMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewQueryMode(keys types.KeyMap, ti *textinput.Model) *QueryMode {
	return &QueryMode{keys: keys, textInput: ti}
}

func (m *QueryMode) Name() string {
	return "search"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := handleCommonKey(m.keys, types.ModeQuery, msg, ctx); ok {
		return actions, true
	}

	if key.Matches(msg, m.keys.Clear) {
		return []types.Action{types.ClearQueryAction{}}, true
	}

	// Let the handler update the text input
	return nil, false
}
