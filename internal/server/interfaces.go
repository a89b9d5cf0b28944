package server

// Server defines the lifecycle contract of the application server.
//
// [RunServer] blocks until a stop signal arrives or the listener fails, and
// performs the graceful shutdown before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error
}
