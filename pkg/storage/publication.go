package storage

import (
	"context"
	"marketplace/pkg/domain"
)

// PublicationStorage is the narrow view of publications used by moderation.
type PublicationStorage interface {
	// PublicationByID returns the publication, or nil when it does not exist.
	PublicationByID(ctx context.Context, id domain.PublicationID) (*domain.Publication, error)
	// PublicationsByIDs returns the publications that exist among ids.
	PublicationsByIDs(ctx context.Context, ids ...domain.PublicationID) ([]domain.Publication, error)
	// MarkPublicationUnderReview hides the publication pending moderation.
	MarkPublicationUnderReview(ctx context.Context, id domain.PublicationID) error
}
