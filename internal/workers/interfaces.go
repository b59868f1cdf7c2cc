// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the update checker that polls the server
// for a new application version.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that can be shut down gracefully.
type Stopper interface {
	Stop()
}
