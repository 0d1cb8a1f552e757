package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// New groups the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWorkers builds the workers enabled by cfg. A zero interval disables
// the corresponding worker.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := New()

	if cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeper(storages.SessionRepository, cfg.SessionSweepInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers configured")
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
