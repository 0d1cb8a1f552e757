package server

// Server runs the notes API until the process is told to stop.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails, then drains in-flight requests and stops the workers.
	RunServer()

	Shutdown()
}

// listener is the part of *httpServer that [server] drives.
type listener interface {
	RunServer()
	Shutdown()
}
