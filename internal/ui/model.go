package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"adscout/internal/config"
	"adscout/internal/domain"
	"adscout/internal/ui/input"
	inputtypes "adscout/internal/ui/input/types"
	"adscout/internal/ui/services/search"
	"adscout/internal/ui/state"
	"adscout/internal/ui/views"
)

// approximate height of one card row, used for page scrolling
const cardRowHeight = 9

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	svc    *search.Service // query controller
	state  *state.AppState

	help         help.Model
	spinner      spinner.Model
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. ctx bounds every search request.
func NewModel(ctx context.Context, cfg *config.Config, svc *search.Service) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	keys := inputtypes.DefaultKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	return &Model{
		ctx:          ctx,
		config:       cfg,
		svc:          svc,
		state:        state.NewAppState(),
		help:         help.New(),
		spinner:      s,
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(cfg.UISettings.ShowImages),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(views.AppTitle))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		// room for the label, borders and the country selector
		m.inputHandler.SetWidth(msg.Width - 40)
		m.state.Scroll(0, m.resultRows())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.PagerActive {
		return m, nil
	}

	keys := m.inputHandler.Keys()

	// Inline help swallows keys until it is closed
	if m.state.ShowHelp {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "esc" || key.Matches(msg, keys.Help) {
			m.state.ShowHelp = false
		}
		return m, nil
	}

	ctx := &input.ModelContext{State: m.svc.State()}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return m, tea.Batch(cmds...)
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.SubmitAction:
		req, ok := m.svc.Submit()
		if !ok {
			return nil
		}
		return m.dispatch(req)

	case inputtypes.RetryAction:
		req, ok := m.svc.Retry()
		if !ok {
			return nil
		}
		return m.dispatch(req)

	case inputtypes.UpdateTextAction:
		m.svc.UpdateQueryText(a.Text)

	case inputtypes.ClearQueryAction:
		m.inputHandler.ClearText()
		m.svc.UpdateQueryText("")

	case inputtypes.CycleCountryAction:
		m.svc.UpdateCountry(cycleCountry(m.svc.State().Country, a.Delta))

	case inputtypes.SelectTabAction:
		m.svc.SelectTab(a.Tab)
		m.state.ResetScroll()

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.ShowHelp = !m.state.ShowHelp
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Debugf("Unhandled action %s", action.Type())
	}

	return nil
}

// dispatch starts the spinner and runs the request off the event loop
func (m *Model) dispatch(req search.Request) tea.Cmd {
	m.state.ResetScroll()
	return tea.Batch(m.searchCmd(req), m.spinner.Tick)
}

// searchCmd returns a command that executes a search request
func (m *Model) searchCmd(req search.Request) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return searchResultMsg{resp: svc.Execute(ctx, req)}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		if m.svc.Complete(msg.resp) {
			m.state.ResetScroll()
		}
		return m, nil

	case spinner.TickMsg:
		// Let the tick loop die once nothing is outstanding
		if !m.svc.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline help
			log.WithError(msg.err).Warn("Help pager failed")
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.PagerActive = true
		return m, nil

	case resumeRenderingMsg:
		m.state.PagerActive = false
		return m, nil

	case clearStatusMsg:
		m.state.SetStatus("")
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	default:
		// Cursor blink and friends
		return m, m.inputHandler.Update(msg)
	}
}

// handleEvent surfaces selected domain events in the status bar
func (m *Model) handleEvent(event domain.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.StaleResponseDroppedEvent:
		log.Debugf("UI saw stale response %d (latest %d)", e.Seq, e.Latest)
		return nil
	case domain.SearchFailedEvent:
		m.state.SetStatus("Last search failed")
	case domain.SearchCompletedEvent:
		m.state.SetStatus("")
		return nil
	default:
		return nil
	}
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) scroll(direction string) {
	page := (m.state.Height - 12) / cardRowHeight
	if page < 1 {
		page = 1
	}

	rows := m.resultRows()
	switch direction {
	case "up":
		m.state.Scroll(-1, rows)
	case "down":
		m.state.Scroll(1, rows)
	case "pageup":
		m.state.Scroll(-page, rows)
	case "pagedown":
		m.state.Scroll(page, rows)
	case "home":
		m.state.ResetScroll()
	}
}

// resultRows is the number of card rows for the current results and width
func (m *Model) resultRows() int {
	cols := views.Columns(m.state.Width, m.config.UISettings.Columns)
	return views.RowCount(len(m.svc.State().Results), cols)
}

// cycleCountry steps through the supported countries with wraparound.
// An unsupported code starts from either end.
func cycleCountry(current string, delta int) string {
	countries := domain.SupportedCountries
	n := len(countries)
	if n == 0 || delta == 0 {
		return current
	}

	i := domain.CountryIndex(current)
	if i < 0 {
		if delta > 0 {
			i = -1
		} else {
			i = n
		}
	}
	i = ((i+delta)%n + n) % n
	return countries[i].Code
}

// View renders the UI
func (m *Model) View() string {
	if m.state.PagerActive {
		return ""
	}

	st := m.svc.State()

	vs := views.ViewState{
		Width:   m.state.Width,
		Height:  m.state.Height,
		Query:   st.Query,
		Country: st.Country,
		Tab:     st.Tab,
		Status:  st.Status,
		Message: st.Message,
		Results: st.Results,

		QueryInput:   m.inputHandler.TextInput().View(),
		Spinner:      m.spinner.View(),
		HelpLine:     m.help.View(m.inputHandler.Keys()),
		FocusCountry: m.inputHandler.CurrentMode() == inputtypes.ModeCountry,

		ScrollOffset:  m.state.ScrollOffset,
		MaxColumns:    m.config.UISettings.Columns,
		StatusMessage: m.state.StatusMessage,
		ShowHelp:      m.state.ShowHelp,
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}

	return m.renderer.Render(vs)
}
