// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-silk-reader/models"
)

// renderBuildInfoWindow is the overlay toggled with "v".
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := []string{
		titleStyle.Render("silkread"),
		"",
		fmt.Sprintf("%-8s %s", "Version:", info.BuildVersion()),
		fmt.Sprintf("%-8s %s", "Date:", info.BuildDate()),
		fmt.Sprintf("%-8s %s", "Commit:", info.BuildCommit()),
		"",
		helpStyle.Render("esc: back"),
	}
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
