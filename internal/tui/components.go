package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewState is the screen a model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the catalog is fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the product table.
	ViewStateList
	// ViewStateDetail shows a single product.
	ViewStateDetail
	// ViewStateError shows the fetch error in place of the table.
	ViewStateError
	// ViewStateQuitting is set once the user asked to quit.
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyBack     = "backspace"
	keySlash    = "/"
	keyTitle    = "t"
	keyPrice    = "p"
	keyPageSize = "z"
	keyRefresh  = "r"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
)

// Layout defaults.
const (
	defaultWidth         = 120
	defaultHeight        = 30
	minHeight            = 5
	borderPadding        = 2
	filterInputCharLimit = 64
	filterInputWidth     = 40

	// chromeHeight is the number of lines used around the table.
	chromeHeight = 9
)

// LoadingState wraps the spinner shown while data is fetched.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a spinner with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return &LoadingState{spinner: s, message: "Loading products..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// SetMessage replaces the text shown next to the spinner.
func (l *LoadingState) SetMessage(message string) {
	l.message = message
}

// RenderLoading renders the spinner line.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return "Loading..."
	}
	return l.spinner.View() + " " + l.message
}
