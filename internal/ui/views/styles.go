package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Label        lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Loading      lipgloss.Style
	Error        lipgloss.Style
	Empty        lipgloss.Style
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	Verified     lipgloss.Style
	Category     lipgloss.Style
	Count        lipgloss.Style
	CountLabel   lipgloss.Style
	Link         lipgloss.Style
	HelpBox      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Border(lipgloss.HiddenBorder(), false).
			Padding(0, 1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dim:     lipgloss.NewStyle().Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main:    lipgloss.NewStyle().Padding(1, 2),
		Scroll:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		Verified:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		Category:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Count:      lipgloss.NewStyle().Bold(true),
		CountLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
	}
}
