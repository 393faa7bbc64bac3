package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the dashboard reacts to
type KeyMap struct {
	Submit      key.Binding
	Retry       key.Binding
	Clear       key.Binding
	SwitchFocus key.Binding
	PrevCountry key.Binding
	NextCountry key.Binding
	Advertisers key.Binding
	Ads         key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Retry:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "retry")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "query/country")),
		PrevCountry: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev country")),
		NextCountry: key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→", "next country")),
		Advertisers: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "advertisers")),
		Ads:         key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "ads")),
		ScrollUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Help:        key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Advertisers, k.Ads, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Retry, k.Clear},
		{k.SwitchFocus, k.PrevCountry, k.NextCountry},
		{k.Advertisers, k.Ads},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}
