package moderation

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	msgIncidenceOpened   = "report received; incidence opened"
	msgIncidenceReview   = "report received; publication is under review"
	msgReportAttached    = "report added to the existing incidence"
	msgReportEscalated   = "report added; publication is now under review"
	maxReportCommentSize = 2000
)

// submission is a validated report about to be applied.
type submission struct {
	publicationID domain.PublicationID
	reporterID    domain.UserID
	reason        domain.ReportReason
	comment       string
	source        domain.ReportSource
}

// ReportByUser files a user complaint against a publication.
func (s *service) ReportByUser(ctx context.Context, report UserReport) (_ *ReportOutcome, err error) {
	ctx, span := s.startSpan(ctx, "ReportByUser",
		attribute.String("publication.id", report.PublicationID.String()))
	defer func() { endSpan(span, err) }()

	if err := validateReport(report.Reason, report.Comment); err != nil {
		return nil, err
	}

	var outcome *ReportOutcome
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := requirePublication(ctx, tx, report.PublicationID); err != nil {
			return err
		}

		reporter, err := tx.UserByID(ctx, report.ReporterID)
		if err != nil {
			return fmt.Errorf("could not get reporter: %w", err)
		}
		if reporter == nil {
			return reject(ErrReporterNotFound, "reporter %s not found", report.ReporterID)
		}

		outcome, err = s.apply(ctx, tx, submission{
			publicationID: report.PublicationID,
			reporterID:    reporter.ID,
			reason:        report.Reason,
			comment:       report.Comment,
			source:        domain.ReportSourceUser,
		})

		return err
	}); err != nil {
		s.reportRejected(ctx, domain.ReportSourceUser, report.PublicationID, err)

		return nil, fmt.Errorf("could not report publication: %w", err)
	}

	s.reportAccepted(ctx, domain.ReportSourceUser, outcome)

	return outcome, nil
}

// ReportBySystem files an automated flag against a publication as the
// configured system user.
func (s *service) ReportBySystem(ctx context.Context, report SystemReport) (_ *ReportOutcome, err error) {
	ctx, span := s.startSpan(ctx, "ReportBySystem",
		attribute.String("publication.id", report.PublicationID.String()))
	defer func() { endSpan(span, err) }()

	if err := validateReport(report.Reason, report.Comment); err != nil {
		return nil, err
	}

	var outcome *ReportOutcome
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		systemUser, err := tx.UserByUsername(ctx, s.options.SystemUsername)
		if err != nil {
			return fmt.Errorf("could not get system user: %w", err)
		}
		if systemUser == nil {
			return reject(ErrSystemUserNotFound, "system user %q not found", s.options.SystemUsername)
		}

		if err := requirePublication(ctx, tx, report.PublicationID); err != nil {
			return err
		}

		outcome, err = s.apply(ctx, tx, submission{
			publicationID: report.PublicationID,
			reporterID:    systemUser.ID,
			reason:        report.Reason,
			comment:       report.Comment,
			source:        domain.ReportSourceSystem,
		})

		return err
	}); err != nil {
		s.reportRejected(ctx, domain.ReportSourceSystem, report.PublicationID, err)

		return nil, fmt.Errorf("could not report publication: %w", err)
	}

	s.reportAccepted(ctx, domain.ReportSourceSystem, outcome)

	return outcome, nil
}

func validateReport(reason domain.ReportReason, comment string) error {
	if !reason.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown report reason %q", reason)
	}
	if utf8.RuneCountInString(comment) > maxReportCommentSize {
		return serrors.With(serrors.ErrBadRequest, "comment exceeds %d characters", maxReportCommentSize)
	}

	return nil
}

func requirePublication(ctx context.Context, tx storage.AllStorage, id domain.PublicationID) error {
	publication, err := tx.PublicationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get publication: %w", err)
	}
	if publication == nil {
		return reject(ErrPublicationNotFound, "publication %s not found", id)
	}

	return nil
}

// apply runs the policy for a report and persists the outcome. It must run
// inside a transaction: the advisory lock is held until commit so concurrent
// reports for the same publication see each other's incidence.
func (s *service) apply(ctx context.Context, tx storage.AllStorage, sub submission) (*ReportOutcome, error) {
	if err := tx.LockPublicationIncidences(ctx, sub.publicationID); err != nil {
		return nil, fmt.Errorf("could not lock publication: %w", err)
	}

	existing, err := tx.ActiveIncidenceByPublication(ctx, sub.publicationID)
	if err != nil {
		return nil, fmt.Errorf("could not get active incidence: %w", err)
	}

	decision, err := s.policy.Evaluate(existing, NewReport{Source: sub.source})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not evaluate report")
	}

	now := s.now()
	var (
		incidence *domain.Incidence
		message   string
	)
	switch o := decision.(type) {
	case Reject:
		return nil, o.Err()
	case CreateIncidence:
		incidence, err = tx.StoreIncidence(ctx, domain.Incidence{
			PublicationID: sub.publicationID,
			Status:        o.Status,
			LastReportAt:  now,
			CreatedAt:     now,
		})
		if err != nil {
			return nil, fmt.Errorf("could not store incidence: %w", err)
		}

		message = msgIncidenceOpened
		if o.Status == domain.IncidenceStatusUnderReview {
			if err := s.escalate(ctx, tx, incidence); err != nil {
				return nil, err
			}
			message = msgIncidenceReview
		}
	case AttachReport:
		updates := storage.IncidenceUpdates{LastReportAt: now}
		escalate := o.Escalate && existing.Status != domain.IncidenceStatusUnderReview
		if escalate {
			if !existing.Status.CanTransitionTo(domain.IncidenceStatusUnderReview) {
				return nil, serrors.With(serrors.ErrInternal,
					"incidence %s cannot move from %s to %s",
					existing.ID, existing.Status, domain.IncidenceStatusUnderReview)
			}
			updates.Status = domain.IncidenceStatusUnderReview
		}

		ok, err := tx.UpdateIncidence(ctx, existing.ID, updates)
		if err != nil {
			return nil, fmt.Errorf("could not update incidence: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("incidence %s was closed concurrently: %w", existing.ID, storage.ErrTxConflict)
		}

		incidence = existing
		incidence.LastReportAt = now
		message = msgReportAttached
		if escalate {
			incidence.Status = domain.IncidenceStatusUnderReview
			if err := s.escalate(ctx, tx, incidence); err != nil {
				return nil, err
			}
			message = msgReportEscalated
		}
	default:
		return nil, serrors.With(serrors.ErrInternal, "unknown policy outcome %T", decision)
	}

	if _, err := tx.StoreReports(ctx, domain.Report{
		IncidenceID: incidence.ID,
		ReporterID:  sub.reporterID,
		Reason:      sub.reason,
		Comment:     sub.comment,
		Source:      sub.source,
		CreatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("could not store report: %w", err)
	}

	return &ReportOutcome{
		IncidenceID:   incidence.ID,
		PublicationID: sub.publicationID,
		Status:        incidence.Status,
		Message:       message,
		CreatedAt:     now,
	}, nil
}

// escalate hides the publication of an incidence that went under review.
func (s *service) escalate(ctx context.Context, tx storage.AllStorage, incidence *domain.Incidence) error {
	if err := tx.MarkPublicationUnderReview(ctx, incidence.PublicationID); err != nil {
		return fmt.Errorf("could not mark publication under review: %w", err)
	}

	return nil
}

func (s *service) reportAccepted(ctx context.Context, source domain.ReportSource, outcome *ReportOutcome) {
	label := "attached"
	switch outcome.Message {
	case msgIncidenceOpened, msgIncidenceReview:
		label = "created"
	case msgReportEscalated:
		label = "escalated"
	}
	metrics.Reports.WithLabelValues(string(source), label).Inc()
	if outcome.Status == domain.IncidenceStatusUnderReview && label != "attached" {
		metrics.Escalations.Inc()
	}

	logger.Info(ctx, "report accepted",
		zap.String("source", string(source)),
		zap.Stringer("incidence_id", outcome.IncidenceID),
		zap.Stringer("publication_id", outcome.PublicationID),
		zap.String("status", string(outcome.Status)),
		zap.String("outcome", label))
}

func (s *service) reportRejected(ctx context.Context,
	source domain.ReportSource,
	publicationID domain.PublicationID,
	err error) {
	metrics.Reports.WithLabelValues(string(source), serrors.Code(err)).Inc()

	logger.Debug(ctx, "report rejected",
		zap.String("source", string(source)),
		zap.Stringer("publication_id", publicationID),
		zap.Error(err))
}
