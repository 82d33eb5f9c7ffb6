// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-silk-reader/models"
)

// Client is the lifecycle contract of the command-line application.
type Client interface {
	// Run executes the command named by args[0] and blocks until it
	// finishes or ctx is cancelled.
	Run(ctx context.Context, args []string) error
}

// Viewer shows a report interactively. *tui.TUI implements it.
type Viewer interface {
	View(ctx context.Context, r models.Report, source string) error
}
