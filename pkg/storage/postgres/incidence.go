package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	incidencesTable = "incidences"
)

// LockPublicationIncidences serializes writers of one publication's incidence
// slot with a transaction-scoped advisory lock. The lock covers the case where
// no incidence row exists yet, which a row lock cannot.
func (p *PgSQL) LockPublicationIncidences(ctx context.Context, publicationID domain.PublicationID) error {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return storage.ErrNotInTx
	}

	_, err := p.DB.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		"incidence:"+publicationID.String())
	if err != nil {
		return fmt.Errorf("could not lock publication incidences in pg: %w", err)
	}

	return nil
}

// ActiveIncidenceByPublication returns the non-CLOSED incidence of the
// publication with its reports, or nil. Inside a transaction the row stays
// locked until commit, so the auto-close sweep skips it and a concurrent
// close is seen before the row is returned.
func (p *PgSQL) ActiveIncidenceByPublication(ctx context.Context,
	publicationID domain.PublicationID) (*domain.Incidence, error) {
	ds := p.Builder.From(incidencesTable).Where(
		goqu.I("publication_id").Eq(uuid.UUID(publicationID)),
		goqu.I("status").Neq(string(domain.IncidenceStatusClosed)),
	)
	if _, ok := p.DB.(*sql.Tx); ok {
		ds = ds.ForUpdate(exp.Wait)
	}

	return p.incidence(ctx, ds, "could not fetch active incidence from pg")
}

// IncidenceByID returns the incidence with its reports, or nil.
func (p *PgSQL) IncidenceByID(ctx context.Context, id domain.IncidenceID) (*domain.Incidence, error) {
	return p.incidence(ctx,
		p.Builder.From(incidencesTable).Where(goqu.I("id").Eq(uuid.UUID(id))),
		"could not fetch incidence by id from pg")
}

func (p *PgSQL) incidence(ctx context.Context, ds *goqu.SelectDataset, errMsg string) (*domain.Incidence, error) {
	var row PgIncidence
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	if !found {
		return nil, nil
	}

	incidences, err := p.withReports(ctx, []PgIncidence{row})
	if err != nil {
		return nil, err
	}

	return &incidences[0], nil
}

// StoreIncidence inserts the incidence and returns the stored row. Reports
// are stored separately through StoreReports.
func (p *PgSQL) StoreIncidence(ctx context.Context, incidence domain.Incidence) (*domain.Incidence, error) {
	if incidence.CreatedAt.IsZero() {
		incidence.CreatedAt = time.Now().UTC()
	}
	if incidence.LastReportAt.IsZero() {
		incidence.LastReportAt = incidence.CreatedAt
	}

	var in PgIncidence
	in.FromDomain(incidence)

	var row PgIncidence
	if _, err := p.Builder.Insert(incidencesTable).
		Rows(in).
		Returning(&PgIncidence{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store incidence into pg: %w", err)
	}

	res := row.ToDomain()

	return &res, nil
}

// UpdateIncidence sets the provided fields on a non-CLOSED incidence.
func (p *PgSQL) UpdateIncidence(ctx context.Context,
	id domain.IncidenceID,
	updates storage.IncidenceUpdates) (bool, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if !updates.LastReportAt.IsZero() {
		rec["last_report_at"] = updates.LastReportAt
	}

	res, err := p.Builder.Update(incidencesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Neq(string(domain.IncidenceStatusClosed)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update incidence in pg: %w", err)
	}

	return affectedOne(res)
}

// ClaimIncidence is a compare-and-set on the moderator column.
func (p *PgSQL) ClaimIncidence(ctx context.Context, id domain.IncidenceID, moderatorID domain.UserID) (bool, error) {
	res, err := p.Builder.Update(incidencesTable).
		Set(goqu.Record{
			"moderator_id": uuid.UUID(moderatorID),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.IncidenceStatusOpen)),
		goqu.I("moderator_id").IsNull(),
		goqu.I("decision").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not claim incidence in pg: %w", err)
	}

	return affectedOne(res)
}

// DecideIncidence records a decision if the moderator holds the claim and no
// decision exists yet.
func (p *PgSQL) DecideIncidence(ctx context.Context, id domain.IncidenceID, update storage.DecisionUpdate) (bool, error) {
	rec := goqu.Record{
		"decision":   string(update.Decision),
		"decided_at": update.DecidedAt,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if update.Status != "" {
		rec["status"] = string(update.Status)
	}

	res, err := p.Builder.Update(incidencesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("moderator_id").Eq(uuid.UUID(update.ModeratorID)),
		goqu.I("decision").IsNull(),
		goqu.I("status").Neq(string(domain.IncidenceStatusClosed)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not decide incidence in pg: %w", err)
	}

	return affectedOne(res)
}

// AppealIncidence moves a decided incidence to APPEALED once.
func (p *PgSQL) AppealIncidence(ctx context.Context, id domain.IncidenceID, update storage.AppealUpdate) (bool, error) {
	res, err := p.Builder.Update(incidencesTable).
		Set(goqu.Record{
			"status":          string(domain.IncidenceStatusAppealed),
			"appeal_argument": update.Argument,
			"appealed_at":     update.AppealedAt,
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("decision").IsNotNull(),
		goqu.I("appealed_at").IsNull(),
		goqu.I("status").In(
			string(domain.IncidenceStatusOpen),
			string(domain.IncidenceStatusUnderReview),
		),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not appeal incidence in pg: %w", err)
	}

	return affectedOne(res)
}

// AutoCloseStaleIncidences closes one batch of stale OPEN incidences. Rows
// locked by in-flight report or claim transactions are skipped and picked up
// by a later batch or run.
func (p *PgSQL) AutoCloseStaleIncidences(ctx context.Context,
	cutoff time.Time,
	closedAt time.Time,
	limit uint) (int64, error) {
	batch := p.Builder.From(incidencesTable).
		Select("id").
		Where(
			goqu.I("status").Eq(string(domain.IncidenceStatusOpen)),
			goqu.I("last_report_at").Lt(cutoff),
		).
		Order(goqu.I("last_report_at").Asc()).
		Limit(limit).
		ForUpdate(exp.SkipLocked)

	res, err := p.Builder.Update(incidencesTable).
		Set(goqu.Record{
			"status":      string(domain.IncidenceStatusClosed),
			"auto_closed": true,
			"closed_at":   closedAt,
			"updated_at":  closedAt,
		}).Where(
		goqu.I("id").In(batch),
		goqu.I("status").Eq(string(domain.IncidenceStatusOpen)),
		goqu.I("last_report_at").Lt(cutoff),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not auto close incidences in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read auto closed rows: %w", err)
	}

	return n, nil
}

// UnreviewedIncidences returns unclaimed and undecided OPEN or UNDER_REVIEW
// incidences, newest first.
func (p *PgSQL) UnreviewedIncidences(ctx context.Context, offset, limit uint) (storage.IncidencePage, error) {
	return p.incidencePage(ctx, offset, limit,
		goqu.I("status").In(
			string(domain.IncidenceStatusOpen),
			string(domain.IncidenceStatusUnderReview),
		),
		goqu.I("moderator_id").IsNull(),
		goqu.I("decision").IsNull(),
	)
}

// ModeratorIncidences returns the incidences claimed by the moderator, newest first.
func (p *PgSQL) ModeratorIncidences(ctx context.Context,
	moderatorID domain.UserID,
	offset, limit uint) (storage.IncidencePage, error) {
	return p.incidencePage(ctx, offset, limit,
		goqu.I("moderator_id").Eq(uuid.UUID(moderatorID)),
	)
}

func (p *PgSQL) incidencePage(ctx context.Context,
	offset, limit uint,
	where ...exp.Expression) (storage.IncidencePage, error) {
	ds := p.Builder.From(incidencesTable).Where(where...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.IncidencePage{}, fmt.Errorf("could not count incidences in pg: %w", err)
	}
	if total == 0 {
		return storage.IncidencePage{Incidences: []domain.Incidence{}}, nil
	}

	var rows []PgIncidence
	if err := ds.
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.IncidencePage{}, fmt.Errorf("could not fetch incidences from pg: %w", err)
	}

	incidences, err := p.withReports(ctx, rows)
	if err != nil {
		return storage.IncidencePage{}, err
	}

	return storage.IncidencePage{
		Incidences: incidences,
		Total:      total,
	}, nil
}

// withReports converts rows and attaches their reports with one query.
func (p *PgSQL) withReports(ctx context.Context, rows []PgIncidence) ([]domain.Incidence, error) {
	out := toDomainSlice(rows, (*PgIncidence).ToDomain)
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	reports, err := p.reportsByIncidences(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range out {
		if r, ok := reports[uuid.UUID(out[i].ID)]; ok {
			out[i].Reports = r
		}
	}

	return out, nil
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n == 1, nil
}
