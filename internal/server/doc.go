// Package server wires and runs the desktop node's transport and background
// tasks.
//
// It owns the HTTP server lifecycle plus the overlay-facing workers, and
// handles signal-driven graceful shutdown of both.
package server
