package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a report.
type ReportID uuid.UUID

// String returns the canonical UUID representation.
func (id ReportID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id as a canonical UUID string.
func (id ReportID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *ReportID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ReportSource tells who filed a report.
type ReportSource string

const (
	// ReportSourceUser is a complaint filed by a marketplace user.
	ReportSourceUser ReportSource = "USER"
	// ReportSourceSystem is a flag raised by an automated check.
	ReportSourceSystem ReportSource = "SYSTEM"
)

// Valid reports whether s is a known source.
func (s ReportSource) Valid() bool {
	switch s {
	case ReportSourceUser, ReportSourceSystem:
		return true
	default:
		return false
	}
}

// ReportReason is the reason code attached to a report.
type ReportReason string

const (
	ReportReasonScam                 ReportReason = "SCAM"
	ReportReasonProhibitedItem       ReportReason = "PROHIBITED_ITEM"
	ReportReasonInappropriateContent ReportReason = "INAPPROPRIATE_CONTENT"
	ReportReasonMisleading           ReportReason = "MISLEADING"
	ReportReasonSpam                 ReportReason = "SPAM"
	ReportReasonDangerousContent     ReportReason = "DANGEROUS_CONTENT"
	ReportReasonOther                ReportReason = "OTHER"
)

// Valid reports whether r is a known reason code.
func (r ReportReason) Valid() bool {
	switch r {
	case ReportReasonScam,
		ReportReasonProhibitedItem,
		ReportReasonInappropriateContent,
		ReportReasonMisleading,
		ReportReasonSpam,
		ReportReasonDangerousContent,
		ReportReasonOther:
		return true
	default:
		return false
	}
}

// Report is a single complaint or automated flag. Reports are append-only:
// once stored they are never edited or deleted.
type Report struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`
	// IncidenceID is the incidence that owns this report.
	IncidenceID IncidenceID `json:"incidenceId"`
	// ReporterID is the user who filed the report, or the system identity.
	ReporterID UserID `json:"reporterId"`

	Reason  ReportReason `json:"reason"`
	Comment string       `json:"comment"`
	Source  ReportSource `json:"source"`

	// CreatedAt is the arrival time of the report.
	CreatedAt time.Time `json:"createdAt"`
}
