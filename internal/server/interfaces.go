package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until shutdown is requested; Shutdown releases the
// listener and waits for in-flight requests.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
