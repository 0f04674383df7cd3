package moderation

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// RequestContentCheck enqueues a content check for the publication. It
// returns false when a check for it is already queued or ran recently.
func (s *service) RequestContentCheck(ctx context.Context, publicationID domain.PublicationID) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "RequestContentCheck",
		attribute.String("publication.id", publicationID.String()))
	defer func() { endSpan(span, err) }()

	publication, err := s.storage.PublicationByID(ctx, publicationID)
	if err != nil {
		return false, fmt.Errorf("could not get publication: %w", err)
	}
	if publication == nil {
		return false, reject(ErrPublicationNotFound, "publication %s not found", publicationID)
	}

	added, err := s.storage.AddJob(ctx, ContentCheckJobArgs{
		PublicationID: publicationID.String(),
		maxAttempts:   s.options.ContentCheckMaxAttempts,
		uniquePeriod:  s.options.ContentCheckUniquePeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue content check: %w", err)
	}

	return added, nil
}

// CheckContent scans the publication's name and description. On a hit it
// files a system report with the matched words; it returns nil when the
// content is clean.
func (s *service) CheckContent(ctx context.Context, publicationID domain.PublicationID) (_ *ReportOutcome, err error) {
	ctx, span := s.startSpan(ctx, "CheckContent",
		attribute.String("publication.id", publicationID.String()))
	defer func() { endSpan(span, err) }()

	if s.detector == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "content detector is not configured")
	}

	publication, err := s.storage.PublicationByID(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("could not get publication: %w", err)
	}
	if publication == nil {
		return nil, reject(ErrPublicationNotFound, "publication %s not found", publicationID)
	}

	words := s.detector.FindDangerousWords(publication.Name + "\n" + publication.Description)
	if len(words) == 0 {
		logger.Debug(ctx, "publication content is clean", zap.Stringer("publication_id", publicationID))

		return nil, nil
	}

	logger.Info(ctx, "dangerous content detected",
		zap.Stringer("publication_id", publicationID),
		zap.Strings("words", words))

	return s.ReportBySystem(ctx, SystemReport{
		PublicationID: publicationID,
		Reason:        domain.ReportReasonDangerousContent,
		Comment:       "dangerous content detected: " + strings.Join(words, ", "),
	})
}
