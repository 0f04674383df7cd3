package moderation

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const maxAppealArgumentSize = 4000

// Claim assigns an OPEN, unclaimed and undecided incidence to the moderator.
// Concurrent claims are resolved by a conditional update: exactly one wins,
// the others get the reason the incidence is no longer claimable.
func (s *service) Claim(ctx context.Context,
	incidenceID domain.IncidenceID,
	moderatorID domain.UserID) (_ *ClaimOutcome, err error) {
	ctx, span := s.startSpan(ctx, "Claim",
		attribute.String("incidence.id", incidenceID.String()),
		attribute.String("moderator.id", moderatorID.String()))
	defer func() { endSpan(span, err) }()
	defer func() { metrics.Claims.WithLabelValues(outcomeLabel(err)).Inc() }()

	incidence, err := s.incidence(ctx, s.storage, incidenceID)
	if err != nil {
		return nil, err
	}
	if err := claimable(incidence); err != nil {
		return nil, err
	}

	moderator, err := s.storage.UserByID(ctx, moderatorID)
	if err != nil {
		return nil, fmt.Errorf("could not get moderator: %w", err)
	}
	if moderator == nil {
		return nil, reject(ErrModeratorNotFound, "moderator %s not found", moderatorID)
	}

	claimed, err := s.storage.ClaimIncidence(ctx, incidenceID, moderatorID)
	if err != nil {
		return nil, fmt.Errorf("could not claim incidence: %w", err)
	}
	if !claimed {
		// lost a race; report what changed
		current, err := s.incidence(ctx, s.storage, incidenceID)
		if err != nil {
			return nil, err
		}
		if err := claimable(current); err != nil {
			return nil, err
		}

		return nil, reject(ErrIncidenceAlreadyClaimed, "incidence was claimed concurrently")
	}

	logger.Info(ctx, "incidence claimed",
		zap.Stringer("incidence_id", incidenceID),
		zap.Stringer("moderator_id", moderatorID))

	return &ClaimOutcome{
		IncidenceID:   incidenceID,
		ModeratorID:   moderatorID,
		ModeratorName: moderator.FullName(),
		Message:       "incidence claimed",
	}, nil
}

// claimable returns why the incidence cannot be claimed, or nil. Claiming
// requires the literal OPEN status: an UNDER_REVIEW incidence is not
// claimable.
func claimable(incidence *domain.Incidence) error {
	switch {
	case incidence.Status != domain.IncidenceStatusOpen:
		return reject(ErrIncidenceNotOpen, "incidence is %s, only OPEN incidences can be claimed", incidence.Status)
	case incidence.Claimed():
		return reject(ErrIncidenceAlreadyClaimed, "incidence is already claimed by another moderator")
	case incidence.Decided():
		return reject(ErrIncidenceAlreadyDecided, "incidence already has a decision")
	default:
		return nil
	}
}

// MakeDecision records the moderator's decision on an incidence they claimed.
// A decision is recorded at most once.
func (s *service) MakeDecision(ctx context.Context,
	incidenceID domain.IncidenceID,
	moderatorID domain.UserID,
	decision domain.Decision) (_ *DecisionOutcome, err error) {
	ctx, span := s.startSpan(ctx, "MakeDecision",
		attribute.String("incidence.id", incidenceID.String()),
		attribute.String("decision", string(decision)))
	defer func() { endSpan(span, err) }()

	if !decision.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown decision %q", decision)
	}

	var outcome *DecisionOutcome
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		incidence, err := s.incidence(ctx, tx, incidenceID)
		if err != nil {
			return err
		}

		moderator, err := tx.UserByID(ctx, moderatorID)
		if err != nil {
			return fmt.Errorf("could not get moderator: %w", err)
		}
		if moderator == nil {
			return reject(ErrModeratorNotFound, "moderator %s not found", moderatorID)
		}

		if err := decidable(incidence, moderatorID); err != nil {
			return err
		}

		update := storage.DecisionUpdate{
			ModeratorID: moderatorID,
			Decision:    decision,
			DecidedAt:   s.now(),
		}
		status := incidence.Status
		target := s.options.StatusOnDecision
		if target != "" && status != target && status.CanTransitionTo(target) {
			update.Status = target
			status = target
		}

		decided, err := tx.DecideIncidence(ctx, incidenceID, update)
		if err != nil {
			return fmt.Errorf("could not decide incidence: %w", err)
		}
		if !decided {
			current, err := s.incidence(ctx, tx, incidenceID)
			if err != nil {
				return err
			}
			if err := decidable(current, moderatorID); err != nil {
				return err
			}

			return reject(ErrIncidenceAlreadyDecided, "incidence was decided concurrently")
		}

		if update.Status == domain.IncidenceStatusUnderReview {
			if err := s.escalate(ctx, tx, incidence); err != nil {
				return err
			}
		}

		outcome = &DecisionOutcome{
			IncidenceID: incidenceID,
			Decision:    decision,
			Status:      status,
			DecidedAt:   update.DecidedAt,
			Message:     "decision recorded",
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not make decision: %w", err)
	}

	metrics.Decisions.WithLabelValues(string(decision)).Inc()
	logger.Info(ctx, "incidence decided",
		zap.Stringer("incidence_id", incidenceID),
		zap.Stringer("moderator_id", moderatorID),
		zap.String("decision", string(decision)),
		zap.String("status", string(outcome.Status)))

	return outcome, nil
}

func decidable(incidence *domain.Incidence, moderatorID domain.UserID) error {
	switch {
	case incidence.Status == domain.IncidenceStatusClosed:
		return reject(ErrIncidenceClosed, "incidence is closed")
	case !incidence.ClaimedBy(moderatorID):
		return reject(ErrIncidenceNotClaimed, "incidence is not claimed by this moderator")
	case incidence.Decided():
		return reject(ErrIncidenceAlreadyDecided, "incidence already has a decision")
	default:
		return nil
	}
}

// Appeal lets the owner of the publication challenge a decision once.
func (s *service) Appeal(ctx context.Context,
	incidenceID domain.IncidenceID,
	sellerID domain.UserID,
	argument string) (_ *AppealOutcome, err error) {
	ctx, span := s.startSpan(ctx, "Appeal",
		attribute.String("incidence.id", incidenceID.String()),
		attribute.String("seller.id", sellerID.String()))
	defer func() { endSpan(span, err) }()

	argument = strings.TrimSpace(argument)
	if argument == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "appeal argument is required")
	}
	if len(argument) > maxAppealArgumentSize {
		return nil, serrors.With(serrors.ErrBadRequest, "appeal argument exceeds %d bytes", maxAppealArgumentSize)
	}

	var outcome *AppealOutcome
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		incidence, err := s.incidence(ctx, tx, incidenceID)
		if err != nil {
			return err
		}

		seller, err := tx.UserByID(ctx, sellerID)
		if err != nil {
			return fmt.Errorf("could not get seller: %w", err)
		}
		if seller == nil {
			return reject(ErrSellerNotFound, "seller %s not found", sellerID)
		}

		publication, err := tx.PublicationByID(ctx, incidence.PublicationID)
		if err != nil {
			return fmt.Errorf("could not get publication: %w", err)
		}
		if publication == nil {
			return reject(ErrPublicationNotFound, "publication %s not found", incidence.PublicationID)
		}
		if publication.OwnerID != seller.ID {
			return reject(ErrNotPublicationOwner, "only the publication owner can appeal")
		}

		if err := appealable(incidence); err != nil {
			return err
		}

		appealedAt := s.now()
		appealed, err := tx.AppealIncidence(ctx, incidenceID, storage.AppealUpdate{
			Argument:   argument,
			AppealedAt: appealedAt,
		})
		if err != nil {
			return fmt.Errorf("could not appeal incidence: %w", err)
		}
		if !appealed {
			current, err := s.incidence(ctx, tx, incidenceID)
			if err != nil {
				return err
			}
			if err := appealable(current); err != nil {
				return err
			}

			return reject(ErrIncidenceAlreadyAppealed, "incidence was appealed concurrently")
		}

		outcome = &AppealOutcome{
			IncidenceID: incidenceID,
			Status:      domain.IncidenceStatusAppealed,
			AppealedAt:  appealedAt,
			Message:     "appeal filed",
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not appeal: %w", err)
	}

	metrics.Appeals.Inc()
	logger.Info(ctx, "incidence appealed",
		zap.Stringer("incidence_id", incidenceID),
		zap.Stringer("seller_id", sellerID))

	return outcome, nil
}

func appealable(incidence *domain.Incidence) error {
	switch {
	case incidence.Status == domain.IncidenceStatusClosed:
		return reject(ErrIncidenceClosed, "incidence is closed")
	case incidence.Appealed():
		return reject(ErrIncidenceAlreadyAppealed, "incidence was already appealed")
	case !incidence.Decided():
		return reject(ErrIncidenceNotDecided, "incidence has no decision to appeal")
	default:
		return nil
	}
}

// incidence loads an incidence or returns the not found rejection.
func (s *service) incidence(ctx context.Context,
	st storage.IncidenceStorage,
	id domain.IncidenceID) (*domain.Incidence, error) {
	incidence, err := st.IncidenceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get incidence: %w", err)
	}
	if incidence == nil {
		return nil, reject(ErrIncidenceNotFound, "incidence %s not found", id)
	}

	return incidence, nil
}

// outcomeLabel is the metric label for an operation result.
func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}

	return serrors.Code(err)
}
