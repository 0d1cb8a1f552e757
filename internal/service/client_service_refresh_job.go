package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const defaultRefreshInterval = 30 * time.Second

type clientRefreshJob struct {
	noteService ClientNoteService
	updates     chan NotesRefresh
	logger      *logger.Logger

	mu     sync.Mutex
	filter models.NoteFilter
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls noteService.List on
// a ticker. The job is idle until Start is called.
func NewClientRefreshJob(noteService ClientNoteService, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{
		noteService: noteService,
		updates:     make(chan NotesRefresh, 1),
		logger:      logger,
	}
}

// Start implements ClientRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

func (j *clientRefreshJob) refresh(ctx context.Context) {
	j.mu.Lock()
	filter := j.filter
	j.mu.Unlock()

	notes, err := j.noteService.List(ctx, filter)
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		j.logger.Warn().Err(err).Msg("background refresh failed")
	}

	select {
	case j.updates <- NotesRefresh{Notes: notes, Err: err}:
	default:
		j.logger.Debug().Msg("previous refresh not consumed, result dropped")
	}
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientRefreshJob) SetFilter(filter models.NoteFilter) {
	j.mu.Lock()
	j.filter = filter
	j.mu.Unlock()
}

func (j *clientRefreshJob) Updates() <-chan NotesRefresh {
	return j.updates
}
