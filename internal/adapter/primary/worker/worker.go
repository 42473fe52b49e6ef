package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fhirpub/internal/port/primary"
)

// Worker is the send loop: it publishes the next sample immediately on
// start, then on a fixed interval, until the context is cancelled.
// Publish failures never stop the loop.
type Worker struct {
	service      primary.PublisherService
	sendInterval time.Duration
	logger       *zap.Logger
}

// NewWorker creates a Worker that publishes at the given interval.
func NewWorker(
	service primary.PublisherService,
	sendInterval time.Duration,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		service:      service,
		sendInterval: sendInterval,
		logger:       logger.Named("worker"),
	}
}

// Run starts the send loop. It blocks until the context is cancelled,
// which is the loop's only exit path.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("send loop started",
		zap.Duration("send_interval", w.sendInterval),
	)

	// Fires immediately for the first send, then at the fixed interval.
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("send loop shutting down")
			return ctx.Err()
		case <-timer.C:
			if err := w.service.PublishNext(ctx); err != nil {
				// Already logged by the service; the loop only keeps cadence.
				w.logger.Debug("publish cycle failed", zap.Error(err))
			}
			timer.Reset(w.sendInterval)
		}
	}
}
