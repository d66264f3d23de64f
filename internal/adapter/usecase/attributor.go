package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"inscription-api/internal/core/port"
)

// AttributorOptions sizes the background attribution pipeline.
type AttributorOptions struct {
	Buffer  int
	Workers int
	// Timeout bounds a single RecordAttribution call.
	Timeout time.Duration
}

// Attributor records dispatch attributions off the response path. Links
// are queued on a bounded channel drained by a fixed set of workers; when
// the queue is full the record runs in the caller. Failures are logged and
// never returned.
type Attributor struct {
	recorder port.ClickRecorder
	logger   *slog.Logger
	timeout  time.Duration

	queue chan int64
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewAttributor starts the workers. Close must be called to drain them.
func NewAttributor(recorder port.ClickRecorder, opts AttributorOptions, logger *slog.Logger) *Attributor {
	if opts.Buffer <= 0 {
		opts.Buffer = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	a := &Attributor{
		recorder: recorder,
		logger:   logger,
		timeout:  opts.Timeout,
		queue:    make(chan int64, opts.Buffer),
	}
	a.wg.Add(opts.Workers)
	for range opts.Workers {
		go a.worker()
	}
	return a
}

// Enqueue schedules one attribution for linkID. It never blocks on storage
// unless the queue is full or the attributor is closed, in which case the
// record is made synchronously.
func (a *Attributor) Enqueue(linkID int64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.closed {
		select {
		case a.queue <- linkID:
			return
		default:
			a.logger.Debug("attribution queue full, recording inline", slog.Int64("link_id", linkID))
		}
	}
	a.record(linkID)
}

// Close stops accepting queued work and waits until the queue is drained.
func (a *Attributor) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	a.wg.Wait()
}

func (a *Attributor) worker() {
	defer a.wg.Done()
	for linkID := range a.queue {
		a.record(linkID)
	}
}

func (a *Attributor) record(linkID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	if err := a.recorder.RecordAttribution(ctx, linkID); err != nil {
		a.logger.Warn("attribution failed",
			slog.Int64("link_id", linkID),
			slog.Any("error", err),
		)
	}
}
