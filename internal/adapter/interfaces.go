// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the decode server's REST API.
//
// [RemoteDecoder] mirrors the save endpoints so `silkread remote` can offload
// decoding to a server. Error responses are mapped back onto the sentinels
// of the models package and of this package, so callers use [errors.Is]
// exactly as they would with a local decode.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-silk-reader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteDecoder sends save containers to a decode server.
type RemoteDecoder interface {
	// Decode uploads raw and returns the player record summary.
	Decode(ctx context.Context, raw []byte) (models.DecodeResponse, error)

	// Report uploads raw and returns its display report.
	Report(ctx context.Context, raw []byte) (models.Report, error)

	// Export uploads raw and returns the document rendered in format.
	Export(ctx context.Context, raw []byte, format models.ExportFormat) ([]byte, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
