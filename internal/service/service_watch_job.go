package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
)

// DefaultWatchInterval is used by Start when no positive interval is given.
const DefaultWatchInterval = 5 * time.Second

type watchJob struct {
	snapshots SnapshotService
	readFile  func(string) ([]byte, error)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatchJob creates a watchJob that records the watched file through
// snapshots on a ticker. The job is idle until Start is called.
func NewWatchJob(snapshots SnapshotService) WatchJob {
	return &watchJob{snapshots: snapshots, readFile: os.ReadFile}
}

// Start implements WatchJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *watchJob) Start(ctx context.Context, path string, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultWatchInterval
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

		j.poll(jobCtx, path)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx, path)
			}
		}
	}()
}

// poll records path once. Failures are logged and retried on the next tick:
// the game may be in the middle of writing the file.
func (j *watchJob) poll(ctx context.Context, path string) {
	log := logger.FromContext(ctx)

	raw, err := j.readFile(path)
	if err != nil {
		log.Warn().Err(err).Str("func", "*watchJob.poll").Str("path", path).Msg("error reading save file")
		return
	}

	_, err = j.snapshots.Record(ctx, path, raw)
	switch {
	case err == nil, errors.Is(err, ErrSnapshotUnchanged):
	case errors.Is(err, context.Canceled):
	default:
		log.Warn().Err(err).Str("func", "*watchJob.poll").Str("path", path).Msg("error recording snapshot")
	}
}

// Stop implements WatchJob. Safe to call when the job is not running.
func (j *watchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
