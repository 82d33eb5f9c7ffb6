package tui

import "github.com/charmbracelet/lipgloss"

const uiDivider = "──────────────────────────────────────────────────────"

func renderTabBar(tabs []tab, active int) string {
	titles := make([]string, len(tabs))
	for i, t := range tabs {
		if i == active {
			titles[i] = activeTabStyle.Render(t.title)
		} else {
			titles[i] = tabStyle.Render(t.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, titles...)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
