package worker

import (
	"context"
	"errors"
	"fmt"
	"marketplace/internal/moderation"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ContentCheckWorker scans a publication for dangerous words and files a
// system report on a hit.
//
// A publication that no longer exists, or whose incidence no longer accepts
// reports (appealed or decided), cancels the job. Other errors are retried by
// River up to the job's MaxAttempts.
type ContentCheckWorker struct {
	river.WorkerDefaults[moderation.ContentCheckJobArgs]

	service moderation.Service
}

func NewContentCheckWorker(service moderation.Service) *ContentCheckWorker {
	return &ContentCheckWorker{service: service}
}

func (w *ContentCheckWorker) Work(ctx context.Context, job *river.Job[moderation.ContentCheckJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("publicationID", job.Args.PublicationID))

	id, err := uuid.Parse(job.Args.PublicationID)
	if err != nil {
		return river.JobCancel(fmt.Errorf("invalid publication id: %w", err)) //nolint: wrapcheck
	}

	outcome, err := w.service.CheckContent(ctx, domain.PublicationID(id))
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "content check cancelled", zap.String("reason", serrors.Code(err)))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in checking content", zap.Error(err))

		return fmt.Errorf("could not check content: %w", err)
	}

	if outcome == nil {
		logger.Info(ctx, "publication content is clean")

		return nil
	}

	logger.Info(ctx, "publication flagged",
		zap.Stringer("incidenceID", outcome.IncidenceID),
		zap.String("status", string(outcome.Status)))

	return nil
}
