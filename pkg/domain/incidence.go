package domain

import (
	"time"

	"github.com/google/uuid"
)

// IncidenceID uniquely identifies an incidence.
type IncidenceID uuid.UUID

// String returns the canonical UUID representation.
func (id IncidenceID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id as a canonical UUID string.
func (id IncidenceID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *IncidenceID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// IncidenceStatus is the lifecycle state of an incidence.
//
// State machine:
//
//	(none)        --first report-->       OPEN | UNDER_REVIEW
//	OPEN          --threshold/system-->   UNDER_REVIEW
//	OPEN          --stale sweep-->        CLOSED (autoClosed)
//	OPEN          --appeal-->             APPEALED
//	UNDER_REVIEW  --appeal-->             APPEALED
//	APPEALED      (no transition through the current operations)
//	CLOSED        terminal
//
// A moderator decision does not have a state of its own: the Decision field
// is the source of truth. Whether recording a decision also moves an OPEN
// incidence to UNDER_REVIEW is a deployment choice (moderation.statusOnDecision);
// by default the status is left untouched. CLOSED is never a valid target for
// a decision because it would make appeals impossible.
type IncidenceStatus string

const (
	// IncidenceStatusOpen is the initial state; user reports accumulate here.
	IncidenceStatusOpen IncidenceStatus = "OPEN"
	// IncidenceStatusUnderReview means the report threshold was reached or an
	// automated check flagged the publication.
	IncidenceStatusUnderReview IncidenceStatus = "UNDER_REVIEW"
	// IncidenceStatusAppealed means the seller challenged the decision. No new
	// reports are accepted in this state.
	IncidenceStatusAppealed IncidenceStatus = "APPEALED"
	// IncidenceStatusClosed is terminal.
	IncidenceStatusClosed IncidenceStatus = "CLOSED"
)

// Valid reports whether s is a known status.
func (s IncidenceStatus) Valid() bool {
	switch s {
	case IncidenceStatusOpen, IncidenceStatusUnderReview, IncidenceStatusAppealed, IncidenceStatusClosed:
		return true
	default:
		return false
	}
}

// Terminal reports whether s no longer counts as an active dispute.
func (s IncidenceStatus) Terminal() bool {
	return s == IncidenceStatusClosed
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s IncidenceStatus) CanTransitionTo(next IncidenceStatus) bool {
	switch s {
	case IncidenceStatusOpen:
		switch next {
		case IncidenceStatusUnderReview, IncidenceStatusAppealed, IncidenceStatusClosed:
			return true
		case IncidenceStatusOpen:
			return false
		}
	case IncidenceStatusUnderReview:
		switch next {
		case IncidenceStatusAppealed:
			return true
		case IncidenceStatusOpen, IncidenceStatusUnderReview, IncidenceStatusClosed:
			return false
		}
	case IncidenceStatusAppealed, IncidenceStatusClosed:
		return false
	}

	return false
}

// ActiveIncidenceStatuses lists the non-terminal statuses. At most one
// incidence per publication may be in one of them.
func ActiveIncidenceStatuses() []IncidenceStatus {
	return []IncidenceStatus{IncidenceStatusOpen, IncidenceStatusUnderReview, IncidenceStatusAppealed}
}

// Decision is the outcome a moderator records on an incidence.
type Decision string

const (
	// DecisionNone means no decision has been recorded yet.
	DecisionNone Decision = ""
	// DecisionAccepted upholds the reports against the publication.
	DecisionAccepted Decision = "ACCEPTED"
	// DecisionRejected dismisses the reports.
	DecisionRejected Decision = "REJECTED"
)

// Valid reports whether d is a decision a moderator can record.
func (d Decision) Valid() bool {
	switch d {
	case DecisionAccepted, DecisionRejected:
		return true
	case DecisionNone:
		return false
	default:
		return false
	}
}

// Incidence is the dispute record tracking every report against one
// publication until it is resolved. It owns its reports and refers to the
// publication and users by id only.
type Incidence struct {
	// ID is the unique identifier of the incidence.
	ID IncidenceID `json:"id"`
	// PublicationID is the disputed publication. The publication lifecycle is
	// managed elsewhere.
	PublicationID PublicationID `json:"publicationId"`
	// Status is the current lifecycle state.
	Status IncidenceStatus `json:"status"`
	// Reports are ordered by arrival.
	Reports []Report `json:"reports"`

	// ModeratorID is set once, when a moderator claims the incidence.
	ModeratorID *UserID `json:"moderatorId,omitempty"`
	// Decision is set once; DecisionNone until a moderator decides.
	Decision  Decision  `json:"decision,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`

	// AppealArgument is the seller's statement when appealing.
	AppealArgument string    `json:"appealArgument,omitempty"`
	AppealedAt     time.Time `json:"appealedAt"`

	// LastReportAt is refreshed on every new report and drives auto-close.
	LastReportAt time.Time `json:"lastReportAt"`
	// AutoClosed is true when the stale sweep closed the incidence.
	AutoClosed bool      `json:"autoClosed"`
	ClosedAt   time.Time `json:"closedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Claimed reports whether a moderator is assigned.
func (i *Incidence) Claimed() bool { return i.ModeratorID != nil }

// Decided reports whether a decision has been recorded.
func (i *Incidence) Decided() bool { return i.Decision != DecisionNone }

// Appealed reports whether the seller already appealed.
func (i *Incidence) Appealed() bool {
	return i.Status == IncidenceStatusAppealed || !i.AppealedAt.IsZero()
}

// ClaimedBy reports whether moderatorID is the assigned moderator.
func (i *Incidence) ClaimedBy(moderatorID UserID) bool {
	return i.ModeratorID != nil && *i.ModeratorID == moderatorID
}
