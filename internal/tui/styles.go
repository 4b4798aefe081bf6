package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorAccent   = lipgloss.Color("63")
	ColorHeader   = lipgloss.Color("229")
	ColorSelected = lipgloss.Color("57")
	ColorLabel    = lipgloss.Color("245")
	ColorSubtle   = lipgloss.Color("240")
	ColorError    = lipgloss.Color("196")
	ColorInfo     = lipgloss.Color("39")
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Foreground(ColorError).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorSubtle).
				BorderBottom(true).
				Bold(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Background(ColorSelected).
				Bold(false)

	NavEnabledStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	NavDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Faint(true)
)
