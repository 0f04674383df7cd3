package postgres_test

import (
	"context"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage/postgres"
	"marketplace/pkg/storage/postgres/postgrestest"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *postgres.PgSQL {
	t.Helper()

	return postgrestest.Setup(t, postgrestest.Options{})
}

// seed creates a seller with one publication.
func seed(t *testing.T, pg *postgres.PgSQL) (domain.User, domain.Publication) {
	t.Helper()
	ctx := context.Background()

	users, err := pg.StoreUsers(ctx, domain.User{
		Username:  "seller",
		FirstName: "Sally",
		LastName:  "Seller",
	})
	require.NoError(t, err)
	require.Len(t, users, 1)

	publications, err := pg.StorePublications(ctx, domain.Publication{
		OwnerID: users[0].ID,
		Name:    "Vintage lamp",
	})
	require.NoError(t, err)
	require.Len(t, publications, 1)

	return users[0], publications[0]
}

func TestPgSQL_SystemUserSeeded(t *testing.T) {
	pg := setupTestDB(t)

	u, err := pg.UserByUsername(context.Background(), "system_user")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "system_user", u.Username)

	missing, err := pg.UserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}
