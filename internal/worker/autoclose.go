package worker

import (
	"context"
	"fmt"
	"marketplace/internal/moderation"
	"marketplace/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AutoCloseWorker runs one auto-close sweep per job.
type AutoCloseWorker struct {
	river.WorkerDefaults[moderation.AutoCloseJobArgs]

	service moderation.Service
}

func NewAutoCloseWorker(service moderation.Service) *AutoCloseWorker {
	return &AutoCloseWorker{service: service}
}

// Timeout bounds a sweep. Batches already committed stay closed if it fires.
func (w *AutoCloseWorker) Timeout(*river.Job[moderation.AutoCloseJobArgs]) time.Duration {
	return 10 * time.Minute
}

func (w *AutoCloseWorker) Work(ctx context.Context, job *river.Job[moderation.AutoCloseJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	closed, err := w.service.AutoClose(ctx)
	if err != nil {
		logger.Error(ctx, "error in auto closing incidences", zap.Int64("closed", closed), zap.Error(err))

		return fmt.Errorf("could not auto close incidences: %w", err)
	}

	logger.Debug(ctx, "auto close job done", zap.Int64("closed", closed))

	return nil
}
