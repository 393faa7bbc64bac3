package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minCardWidth = 36
	cardGap      = 1
)

// CardRenderer handles rendering of advertiser cards
type CardRenderer struct {
	styles     *Styles
	showImages bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showImages bool) *CardRenderer {
	return &CardRenderer{
		styles:     styles,
		showImages: showImages,
	}
}

// RenderCard renders one card at the given outer width
func (r *CardRenderer) RenderCard(card CardView, width int) string {
	// border (2) and padding (2) live inside the outer width
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var lines []string

	title := r.styles.CardTitle.Render(card.Title)
	if card.Verified {
		title += " " + r.styles.Verified.Render("✓")
	}
	lines = append(lines, title)

	if card.Category != "" {
		lines = append(lines, r.styles.Category.Render(card.Category))
	}
	lines = append(lines, "")

	half := inner / 2
	likes := lipgloss.NewStyle().Width(half).Render(
		r.styles.Count.Render(card.Likes) + "\n" + r.styles.CountLabel.Render("FB Likes"))
	followers := lipgloss.NewStyle().Width(inner - half).Render(
		r.styles.Count.Render(card.Followers) + "\n" + r.styles.CountLabel.Render("IG Followers"))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, likes, followers))

	if card.FacebookURL != "" || card.InstagramURL != "" {
		lines = append(lines, "")
	}
	if card.FacebookURL != "" {
		lines = append(lines, r.styles.CountLabel.Render("Facebook  ")+r.styles.Link.Render(card.FacebookURL))
	}
	if card.InstagramURL != "" {
		lines = append(lines, r.styles.CountLabel.Render("Instagram ")+r.styles.Link.Render(card.InstagramURL))
	}

	if r.showImages && card.ImageURI != "" {
		lines = append(lines, r.styles.Dim.Render("Image "+card.ImageURI))
	}

	return r.styles.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderRows renders cards into grid rows of cols cards each
func (r *CardRenderer) RenderRows(cards []CardView, cols, width int) []string {
	if cols < 1 {
		cols = 1
	}
	cardWidth := (width - (cols-1)*cardGap) / cols

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}

		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
			parts = append(parts, r.RenderCard(cards[i], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return rows
}

// Columns returns how many cards fit side by side, capped at maxCols
func Columns(termWidth, maxCols int) int {
	usable := contentWidth(termWidth)
	cols := (usable + cardGap) / (minCardWidth + cardGap)
	if cols > maxCols {
		cols = maxCols
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// RowCount returns the number of grid rows n cards occupy
func RowCount(n, cols int) int {
	if cols < 1 {
		cols = 1
	}
	return (n + cols - 1) / cols
}

func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	// Account for main container padding
	w := termWidth - 4
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}
