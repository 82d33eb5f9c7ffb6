package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/service"
)

// WatchWorker drives a WatchJob over a single save file.
type WatchWorker struct {
	job      service.WatchJob
	path     string
	interval time.Duration

	logger *logger.Logger
}

func NewWatchWorker(job service.WatchJob, path string, interval time.Duration, logger *logger.Logger) *WatchWorker {
	return &WatchWorker{
		job:      job,
		path:     path,
		interval: interval,
		logger:   logger,
	}
}

func (w *WatchWorker) Run(ctx context.Context) {
	w.logger.Info().
		Str("func", "*WatchWorker.Run").
		Str("path", w.path).
		Dur("interval", w.interval).
		Msg("watching save file")

	w.job.Start(w.logger.WithContext(ctx), w.path, w.interval)
}

func (w *WatchWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Str("func", "*WatchWorker.Stop").Str("path", w.path).Msg("watch stopped")
}
