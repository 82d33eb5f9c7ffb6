// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned by NewServer when there is no HTTP handler
// or no address to listen on.
var errNoHTTPHandler = errors.New("http handler or listen address is not configured")
