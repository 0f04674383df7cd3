package storage

import (
	"context"
	"marketplace/pkg/domain"
	"time"
)

// IncidenceUpdates holds the fields changed when a report is attached to an
// existing incidence. Zero values are left untouched.
type IncidenceUpdates struct {
	// Status moves the incidence to a new state.
	Status domain.IncidenceStatus
	// LastReportAt refreshes the stale-sweep clock.
	LastReportAt time.Time
}

// DecisionUpdate describes a moderator decision applied with DecideIncidence.
type DecisionUpdate struct {
	ModeratorID domain.UserID
	Decision    domain.Decision
	DecidedAt   time.Time
	// Status, when set, moves the incidence to this state together with the
	// decision.
	Status domain.IncidenceStatus
}

// AppealUpdate describes a seller appeal applied with AppealIncidence.
type AppealUpdate struct {
	Argument   string
	AppealedAt time.Time
}

// IncidencePage groups a page of incidences with the total number of rows
// matching the query.
type IncidencePage struct {
	Incidences []domain.Incidence
	Total      int64
}

// IncidenceStorage defines persistence of incidences. Incidences returned by
// lookups include their reports in arrival order.
type IncidenceStorage interface {
	// LockPublicationIncidences takes a transaction-scoped exclusive lock for
	// the publication's incidence slot. Concurrent callers for the same
	// publication wait until the holder commits or rolls back. It returns
	// ErrNotInTx outside a transaction.
	LockPublicationIncidences(ctx context.Context, publicationID domain.PublicationID) error
	// ActiveIncidenceByPublication returns the non-terminal incidence of a
	// publication, or nil when there is none.
	ActiveIncidenceByPublication(ctx context.Context, publicationID domain.PublicationID) (*domain.Incidence, error)
	// IncidenceByID returns the incidence with the given id, or nil.
	IncidenceByID(ctx context.Context, id domain.IncidenceID) (*domain.Incidence, error)
	// StoreIncidence inserts a new incidence (without reports) and returns
	// the stored row.
	StoreIncidence(ctx context.Context, incidence domain.Incidence) (*domain.Incidence, error)
	// UpdateIncidence applies updates to a non-terminal incidence. It reports
	// false when the incidence is missing or already CLOSED.
	UpdateIncidence(ctx context.Context, id domain.IncidenceID, updates IncidenceUpdates) (bool, error)
	// ClaimIncidence assigns the moderator only if the incidence is OPEN, has
	// no moderator and no decision. It returns false when no row matched.
	ClaimIncidence(ctx context.Context, id domain.IncidenceID, moderatorID domain.UserID) (bool, error)
	// DecideIncidence records the decision only if the incidence is claimed by
	// the moderator, has no decision and is not CLOSED. It returns false when
	// no row matched.
	DecideIncidence(ctx context.Context, id domain.IncidenceID, update DecisionUpdate) (bool, error)
	// AppealIncidence moves a decided, never appealed, non-CLOSED incidence to
	// APPEALED. It returns false when no row matched.
	AppealIncidence(ctx context.Context, id domain.IncidenceID, update AppealUpdate) (bool, error)
	// AutoCloseStaleIncidences closes at most limit OPEN incidences whose last
	// report is older than cutoff, skipping rows locked by other transactions.
	// It returns the number of closed incidences.
	AutoCloseStaleIncidences(ctx context.Context, cutoff time.Time, closedAt time.Time, limit uint) (int64, error)
	// UnreviewedIncidences pages through OPEN and UNDER_REVIEW incidences with
	// no moderator and no decision, newest first.
	UnreviewedIncidences(ctx context.Context, offset, limit uint) (IncidencePage, error)
	// ModeratorIncidences pages through incidences claimed by the moderator,
	// newest first.
	ModeratorIncidences(ctx context.Context, moderatorID domain.UserID, offset, limit uint) (IncidencePage, error)
}
