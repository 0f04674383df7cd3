package postgres

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reportsTable = "reports"
)

// StoreReports inserts reports in the given order. Reports without CreatedAt
// are stamped with the current time.
func (p *PgSQL) StoreReports(ctx context.Context, reports ...domain.Report) ([]domain.Report, error) {
	if len(reports) == 0 {
		return []domain.Report{}, nil
	}

	now := time.Now().UTC()
	rows := make([]PgReport, 0, len(reports))
	for _, report := range reports {
		if report.CreatedAt.IsZero() {
			report.CreatedAt = now
		}

		var row PgReport
		row.FromDomain(report)
		rows = append(rows, row)
	}

	var stored []PgReport
	if err := p.Builder.Insert(reportsTable).
		Rows(rows).
		Returning(&PgReport{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store reports into pg: %w", err)
	}

	return toDomainSlice(stored, (*PgReport).ToDomain), nil
}

// reportsByIncidences groups the reports of the incidences by incidence id in
// arrival order.
func (p *PgSQL) reportsByIncidences(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Report, error) {
	var rows []PgReport
	if err := p.Builder.From(reportsTable).
		Where(goqu.I("incidence_id").In(ids)).
		Order(goqu.I("incidence_id").Asc(), goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch reports from pg: %w", err)
	}

	res := make(map[uuid.UUID][]domain.Report, len(ids))
	for i := range rows {
		res[rows[i].IncidenceID] = append(res[rows[i].IncidenceID], rows[i].ToDomain())
	}

	return res, nil
}
