package state

// AppState contains UI state that is not part of the search controller
type AppState struct {
	Width  int
	Height int

	ScrollOffset  int    // first visible card row
	ShowHelp      bool   // inline help panel
	StatusMessage string // status bar message
	PagerActive   bool   // the help pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetSize records the terminal size
func (s *AppState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Scroll moves the card viewport by delta rows within [0, rows-1]
func (s *AppState) Scroll(delta, rows int) {
	s.ScrollOffset += delta
	if s.ScrollOffset > rows-1 {
		s.ScrollOffset = rows - 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// ResetScroll jumps back to the first row
func (s *AppState) ResetScroll() {
	s.ScrollOffset = 0
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
}
