package server

// Server runs the application's transport servers until shutdown.
type Server interface {
	RunServer()
	Shutdown()
}
