// Package tui is the interactive report viewer behind `silkread view`.
//
// The viewer shows a decoded save as tabs (General, Current, Tools, Bosses,
// Fleas, Maps, Skills, Misc) in a scrollable viewport.
package tui

import (
	"context"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{buildInfo: buildInfo, logger: logger}
}

// View runs the viewer over r until the user quits or ctx is cancelled.
// source is shown in the title bar.
func (t *TUI) View(ctx context.Context, r models.Report, source string) error {
	model := newViewerModel(r, source, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.View").Msg("viewer stopped with error")
		return err
	}
	return nil
}
