// Package server wires and runs the osphor HTTP server.
//
// It owns the listener lifecycle together with the background workers: both
// start together, and on SIGINT, SIGTERM or SIGQUIT the listener is drained
// within the configured shutdown timeout before the workers are stopped.
package server
