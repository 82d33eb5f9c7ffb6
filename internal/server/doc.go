// Package server runs the decode server's HTTP transport.
//
// It owns the listener lifecycle: startup, stop on signal or context
// cancellation, and graceful shutdown bounded by a timeout.
package server
