// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs several
// workers side by side for the lifetime of a context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Implementations are expected to block until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Func adapts an ordinary function to the [Worker] interface.
type Func func(ctx context.Context)

func (f Func) Run(ctx context.Context) { f(ctx) }
