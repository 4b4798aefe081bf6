package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how command output should be rendered.
type OutputMode int

const (
	// OutputModePlain writes uncolored text; used for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the screen.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen dashboard.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode for stdout. plain forces plain
// output, noColor downgrades interactive to plain, and NO_COLOR or
// TERM=dumb in the environment behave like noColor.
func DetectOutputMode(plain, noColor, nonInteractive bool) OutputMode {
	if plain || !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if nonInteractive || !isTerminal(os.Stdin) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
