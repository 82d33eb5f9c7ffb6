// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors produced by handlers and middleware of this package.
var (
	// ErrEmptyBody is returned when a save endpoint receives no body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrInvalidLimit is returned when the snapshot listing limit is not a
	// non-negative integer.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header is
	// missing or does not match the body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrSnapshotsDisabled is returned by the snapshot routes when the
	// server runs without a snapshot database.
	ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")
)
