package storage

import (
	"context"
	"marketplace/pkg/domain"
)

// UserStorage looks up user accounts.
type UserStorage interface {
	// UserByID returns the user, or nil when it does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByUsername returns the user with the username, or nil.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UsersByIDs returns the users that exist among ids.
	UsersByIDs(ctx context.Context, ids ...domain.UserID) ([]domain.User, error)
}
