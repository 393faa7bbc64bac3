package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"adscout/internal/ui/input/modes"
	"adscout/internal/ui/input/types"
)

// Handler routes key presses to the mode of the focused control
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

// New creates a handler with the search box focused
func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search advertisers..."
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(keys, h.textInput)
	h.modes[types.ModeCountry] = modes.NewCountryMode(keys)

	return h
}

// HandleKey translates a key press into actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, handler.Exit(ctx)...)
		h.currentMode = changeMode.Mode
		handler = h.modes[h.currentMode]
		if handler != nil {
			allActions = append(allActions, handler.Enter(ctx)...)
		}
		if h.currentMode == types.ModeQuery {
			cmd = textinput.Blink
		}
	}

	// Unconsumed keys in the search box go to the text input
	if !consumed && h.currentMode == types.ModeQuery {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// Update passes non-keyboard messages (cursor blink) to the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// CurrentMode returns the focused control
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared search box
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the active key map
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// ClearText empties the search box
func (h *Handler) ClearText() {
	h.textInput.Reset()
}

// SetWidth sets the visible width of the search box
func (h *Handler) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	h.textInput.Width = w
}
