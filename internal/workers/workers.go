package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers another worker. It must not be called while Run is active.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
