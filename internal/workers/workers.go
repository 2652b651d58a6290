package workers

import (
	"context"
	"sync"
)

// Workers aggregates background workers and runs them as a group.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run launches every worker in its own goroutine. It returns immediately;
// the workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every launched worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
