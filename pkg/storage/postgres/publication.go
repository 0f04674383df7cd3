package postgres

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	publicationsTable = "publications"
)

// PublicationByID returns the publication, or nil when it does not exist.
func (p *PgSQL) PublicationByID(ctx context.Context, id domain.PublicationID) (*domain.Publication, error) {
	var row PgPublication
	found, err := p.Builder.From(publicationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch publication from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	res := row.ToDomain()

	return &res, nil
}

func (p *PgSQL) PublicationsByIDs(ctx context.Context, ids ...domain.PublicationID) ([]domain.Publication, error) {
	if len(ids) == 0 {
		return []domain.Publication{}, nil
	}

	in := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		in = append(in, uuid.UUID(id))
	}

	var rows []PgPublication
	if err := p.Builder.From(publicationsTable).
		Where(goqu.I("id").In(in)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch publications from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgPublication).ToDomain), nil
}

// MarkPublicationUnderReview hides the publication until a moderator acts.
func (p *PgSQL) MarkPublicationUnderReview(ctx context.Context, id domain.PublicationID) error {
	_, err := p.Builder.Update(publicationsTable).
		Set(goqu.Record{
			"status":     string(domain.PublicationStatusUnderReview),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark publication under review in pg: %w", err)
	}

	return nil
}

// StorePublications inserts publications. It is used by seeding and tests;
// the publication lifecycle itself lives outside this service.
func (p *PgSQL) StorePublications(ctx context.Context, publications ...domain.Publication) ([]domain.Publication, error) {
	rows := make([]PgPublication, 0, len(publications))
	for _, publication := range publications {
		var row PgPublication
		row.FromDomain(publication)
		rows = append(rows, row)
	}

	var stored []PgPublication
	if err := p.Builder.Insert(publicationsTable).
		Rows(rows).
		Returning(&PgPublication{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store publications into pg: %w", err)
	}

	return toDomainSlice(stored, (*PgPublication).ToDomain), nil
}
