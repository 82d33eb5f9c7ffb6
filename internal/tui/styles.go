package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#8B1E3F", Dark: "#E05A7A"}

	appStyle       = lipgloss.NewStyle().Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	statusStyle    = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Foreground(accent).Underline(true)
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
)
