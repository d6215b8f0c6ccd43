package form

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#3a86ff")
	panel  = lipgloss.Color("#2b2b2b")
	border = lipgloss.Color("#3a3a3a")
	fg     = lipgloss.Color("#ffffff")
	errFg  = lipgloss.Color("#ff5f5f")
	okFg   = lipgloss.Color("#5fd787")
	dimFg  = lipgloss.Color("#8a8a8a")
)

type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	label       lipgloss.Style
	output      lipgloss.Style
	statusOK    lipgloss.Style
	statusErr   lipgloss.Style
	help        lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		activeTab:   lipgloss.NewStyle().Bold(true).Foreground(fg).Background(accent).Padding(0, 2),
		inactiveTab: lipgloss.NewStyle().Foreground(fg).Background(panel).Padding(0, 2),
		label:       lipgloss.NewStyle().Foreground(dimFg),
		output:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		statusOK:    lipgloss.NewStyle().Foreground(okFg),
		statusErr:   lipgloss.NewStyle().Foreground(errFg),
		help:        lipgloss.NewStyle().Foreground(dimFg),
	}
}
