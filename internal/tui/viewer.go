package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 2 * time.Second

// header: title line, tab bar, divider. footer: divider, help/status line.
const (
	headerHeight = 3
	footerHeight = 2
)

type viewerModel struct {
	source string
	tabs   []tab
	active int

	viewport viewport.Model
	ready    bool
	width    int

	status   string
	showInfo bool
	info     models.AppBuildInfo

	// writeClipboard is clipboard.WriteAll, replaced in tests.
	writeClipboard func(string) error
}

func newViewerModel(r models.Report, source string, info models.AppBuildInfo) viewerModel {
	return viewerModel{
		source:         source,
		tabs:           buildTabs(r),
		info:           info,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.tabs[m.active].body)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = "Copied " + msg.tab
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.showInfo {
			if key.Matches(msg, keys.esc, keys.info) {
				m.showInfo = false
			}
			if key.Matches(msg, keys.quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.tab):
			m.switchTab(m.active + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.switchTab(m.active - 1)
			return m, nil
		case key.Matches(msg, keys.info):
			m.showInfo = true
			return m, nil
		case key.Matches(msg, keys.copy):
			return m, m.copyActive()
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// switchTab activates tab i, wrapping around at both ends.
func (m *viewerModel) switchTab(i int) {
	n := len(m.tabs)
	m.active = ((i % n) + n) % n
	if m.ready {
		m.viewport.SetContent(m.tabs[m.active].body)
		m.viewport.GotoTop()
	}
}

func (m viewerModel) copyActive() tea.Cmd {
	t := m.tabs[m.active]
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{tab: t.title, err: write(t.body)}
	}
}

func (m viewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText("silkread · "+m.source, m.width-2)))
	b.WriteString("\n")
	b.WriteString(renderTabBar(m.tabs, m.active))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(uiDivider))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(uiDivider))
	b.WriteString("\n")

	footer := helpStyle.Render(fmt.Sprintf("tab/shift+tab: switch  j/k: scroll  c: copy  v: about  q: quit  %3.f%%",
		m.viewport.ScrollPercent()*100))
	if m.status != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, statusStyle.Render(m.status), "  ", footer)
	}
	b.WriteString(footer)

	return appStyle.Render(b.String())
}
