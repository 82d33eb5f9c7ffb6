// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the silkread command-line application.
//
// App dispatches sub-commands (decode, export, encode, stats, view, watch,
// history, remote, version). Each command loads its configuration through
// the config package with its own flag set, so the shared flags (-d, -remote,
// -hash-key, ...) work the same everywhere.
package client
