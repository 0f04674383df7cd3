package postgres

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.user(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.user(ctx, goqu.I("username").Eq(username))
}

func (p *PgSQL) user(ctx context.Context, where exp.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	res := row.ToDomain()

	return &res, nil
}

func (p *PgSQL) UsersByIDs(ctx context.Context, ids ...domain.UserID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	in := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		in = append(in, uuid.UUID(id))
	}

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("id").In(in)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgUser).ToDomain), nil
}

// StoreUsers inserts user accounts. Accounts are managed outside this
// service; this is used to seed development databases and tests.
func (p *PgSQL) StoreUsers(ctx context.Context, users ...domain.User) ([]domain.User, error) {
	rows := make([]PgUser, 0, len(users))
	for _, user := range users {
		var row PgUser
		row.FromDomain(user)
		rows = append(rows, row)
	}

	var stored []PgUser
	if err := p.Builder.Insert(usersTable).
		Rows(rows).
		Returning(&PgUser{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store users into pg: %w", err)
	}

	return toDomainSlice(stored, (*PgUser).ToDomain), nil
}
