package server

// Server is the lifecycle contract of the transport server that fronts the
// proxy API and the static app shell.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and drains open connections.
	Shutdown()
}
