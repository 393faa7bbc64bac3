package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adscout/internal/domain"
	"adscout/internal/ui/services/search"
)

// AppTitle is shown in the header
const AppTitle = "Ad Research Platform"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Controller state
	Query   string
	Country string
	Tab     domain.Tab
	Status  search.Status
	Message string
	Results []domain.Advertiser

	// Widgets rendered by the model
	QueryInput   string // text input view
	Spinner      string // current spinner frame
	HelpLine     string // short key help
	HelpContent  string // full help, shown when ShowHelp is set
	FocusCountry bool

	ScrollOffset  int // first visible card row
	MaxColumns    int
	StatusMessage string
	ShowHelp      bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showImages bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles, showImages),
	}
}

// Styles exposes the style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	display := BuildDisplay(state)

	header := r.renderHeader(state)

	var footer []string
	if state.StatusMessage != "" {
		footer = append(footer, r.styles.Dim.Render(state.StatusMessage))
	}
	if state.HelpLine != "" {
		footer = append(footer, r.styles.Help.Render(state.HelpLine))
	}

	// Lines left for the result region, -2 for the container padding
	available := 0
	if state.Height > 0 {
		available = state.Height - 2 - lipgloss.Height(header) - len(footer) - 1
		if available < 3 {
			available = 3
		}
	}

	var body string
	if state.ShowHelp && state.HelpContent != "" {
		body = r.styles.HelpBox.Render(state.HelpContent)
	} else {
		body = r.renderRegion(state, display, available)
	}

	content := &strings.Builder{}
	content.WriteString(header)
	content.WriteString("\n")
	content.WriteString(body)

	// Push the footer to the bottom
	if len(footer) > 0 {
		if state.Height > 0 {
			used := lipgloss.Height(content.String()) + len(footer)
			if pad := state.Height - 2 - used; pad > 0 {
				content.WriteString(strings.Repeat("\n", pad))
			}
		}
		content.WriteString("\n")
		content.WriteString(strings.Join(footer, "\n"))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderHeader draws title, tabs and the search controls
func (r *Renderer) renderHeader(state ViewState) string {
	var b strings.Builder

	logo := r.styles.Title.Render(AppTitle)
	if state.Status == search.StatusLoading {
		indicator := r.styles.Dim.Render(strings.TrimSpace(state.Spinner + " Searching"))
		pad := contentWidth(state.Width) - lipgloss.Width(logo) - lipgloss.Width(indicator)
		if pad < 2 {
			pad = 2
		}
		logo = logo + strings.Repeat(" ", pad) + indicator
	}
	b.WriteString(logo)
	b.WriteString("\n\n")

	b.WriteString(r.renderTabs(state.Tab))
	b.WriteString("\n\n")

	b.WriteString(r.renderControls(state))
	b.WriteString("\n")

	return b.String()
}

func (r *Renderer) renderTabs(active domain.Tab) string {
	tabs := []domain.Tab{domain.TabAdvertisers, domain.TabAds}
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("f%d %s", i+1, t)
		if t == active {
			parts = append(parts, r.styles.TabActive.Render(label))
		} else {
			parts = append(parts, r.styles.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// renderControls draws the search box and the country selector side by side
func (r *Renderer) renderControls(state ViewState) string {
	queryStyle := r.styles.FieldFocused
	countryStyle := r.styles.Field
	if state.FocusCountry {
		queryStyle, countryStyle = r.styles.Field, r.styles.FieldFocused
	}

	countryName := state.Country
	if c, ok := domain.LookupCountry(state.Country); ok {
		countryName = c.Name
	}
	selector := fmt.Sprintf("◀ %s ▶", countryName)
	countryBox := countryStyle.Render(selector)

	// The search box takes what the selector leaves
	queryWidth := contentWidth(state.Width) - lipgloss.Width(countryBox) - 2 - 4
	if queryWidth < 10 {
		queryWidth = 10
	}
	queryBox := queryStyle.Width(queryWidth).Render(r.styles.Label.Render("Search ") + state.QueryInput)

	return lipgloss.JoinHorizontal(lipgloss.Center, queryBox, "  ", countryBox)
}

// renderRegion draws the result area; available <= 0 means unlimited
func (r *Renderer) renderRegion(state ViewState, display Display, available int) string {
	switch display.Region {
	case RegionLoading:
		return r.styles.Loading.Render(strings.TrimSpace(state.Spinner + " " + display.Message))

	case RegionError:
		return r.styles.Error.Render("Error: "+display.Message) + "\n" + r.styles.Dim.Render(RetryHint)

	case RegionEmpty:
		return r.styles.Empty.Render(display.Message)

	case RegionAdsUnavailable:
		return r.styles.Empty.Render(display.Message)

	case RegionResults:
		return r.renderGrid(state, display.Cards, available)
	}

	return ""
}

// renderGrid lays out cards and shows the rows that fit, starting at the
// scroll offset
func (r *Renderer) renderGrid(state ViewState, cards []CardView, available int) string {
	maxCols := state.MaxColumns
	if maxCols < 1 {
		maxCols = 3
	}
	cols := Columns(state.Width, maxCols)
	rows := r.cardRender.RenderRows(cards, cols, contentWidth(state.Width))

	offset := ClampScroll(state.ScrollOffset, len(rows))

	noun := "advertisers"
	if len(cards) == 1 {
		noun = "advertiser"
	}
	summary := r.styles.Dim.Render(fmt.Sprintf("%d %s", len(cards), noun))
	if offset > 0 {
		summary += r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d rows above", offset))
	}

	lines := []string{summary}
	used := 1
	shown := 0
	for _, row := range rows[offset:] {
		h := lipgloss.Height(row)
		// Always show at least one row
		if available > 0 && shown > 0 && used+h+1 > available {
			break
		}
		lines = append(lines, row)
		used += h
		shown++
	}

	if below := len(rows) - offset - shown; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows (pgdn)", below)))
	}

	return strings.Join(lines, "\n")
}

// ClampScroll bounds a row offset to [0, rows-1]
func ClampScroll(offset, rows int) int {
	if offset >= rows {
		offset = rows - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
