package domain

import "github.com/google/uuid"

// PublicationID uniquely identifies a marketplace publication.
type PublicationID uuid.UUID

// String returns the canonical UUID representation.
func (id PublicationID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id as a canonical UUID string.
func (id PublicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *PublicationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// PublicationStatus is the visibility state of a publication. It is owned by
// the publication lifecycle; moderation only ever moves it to UNDER_REVIEW.
type PublicationStatus string

const (
	// PublicationStatusVisible means the publication is listed normally.
	PublicationStatusVisible PublicationStatus = "VISIBLE"
	// PublicationStatusUnderReview means a moderation incidence escalated and
	// the publication is hidden until a moderator acts.
	PublicationStatusUnderReview PublicationStatus = "UNDER_REVIEW"
	// PublicationStatusBlocked means the publication was taken down.
	PublicationStatusBlocked PublicationStatus = "BLOCKED"
)

// Publication is the summary of a listing as seen by the moderation workflow.
type Publication struct {
	// ID is the unique identifier of the publication.
	ID PublicationID `json:"id"`
	// OwnerID is the seller who created the publication. Only the owner may
	// appeal a decision on it.
	OwnerID UserID `json:"ownerId"`

	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      PublicationStatus `json:"status"`
}
