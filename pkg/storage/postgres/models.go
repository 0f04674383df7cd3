package postgres

import (
	"database/sql"
	"marketplace/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgIncidence struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	PublicationID uuid.UUID `db:"publication_id"`
	Status        string    `db:"status"`

	ModeratorID    uuid.NullUUID  `db:"moderator_id"`
	Decision       sql.NullString `db:"decision"`
	DecidedAt      sql.NullTime   `db:"decided_at"`
	AppealArgument sql.NullString `db:"appeal_argument"`
	AppealedAt     sql.NullTime   `db:"appealed_at"`

	LastReportAt time.Time    `db:"last_report_at"`
	AutoClosed   bool         `db:"auto_closed"`
	ClosedAt     sql.NullTime `db:"closed_at"`

	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToDomain converts the row without reports; callers attach them.
func (p *PgIncidence) ToDomain() domain.Incidence {
	var moderatorID *domain.UserID
	if p.ModeratorID.Valid {
		id := domain.UserID(p.ModeratorID.UUID)
		moderatorID = &id
	}

	return domain.Incidence{
		ID:             domain.IncidenceID(p.ID),
		PublicationID:  domain.PublicationID(p.PublicationID),
		Status:         domain.IncidenceStatus(p.Status),
		Reports:        []domain.Report{},
		ModeratorID:    moderatorID,
		Decision:       domain.Decision(p.Decision.String),
		DecidedAt:      p.DecidedAt.Time,
		AppealArgument: p.AppealArgument.String,
		AppealedAt:     p.AppealedAt.Time,
		LastReportAt:   p.LastReportAt,
		AutoClosed:     p.AutoClosed,
		ClosedAt:       p.ClosedAt.Time,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgIncidence) FromDomain(in domain.Incidence) {
	var moderatorID uuid.NullUUID
	if in.ModeratorID != nil {
		moderatorID = uuid.NullUUID{UUID: uuid.UUID(*in.ModeratorID), Valid: true}
	}

	*p = PgIncidence{
		ID:            uuid.UUID(in.ID),
		PublicationID: uuid.UUID(in.PublicationID),
		Status:        string(in.Status),
		ModeratorID:   moderatorID,
		Decision: sql.NullString{
			String: string(in.Decision),
			Valid:  in.Decision != domain.DecisionNone,
		},
		DecidedAt: nullTime(in.DecidedAt),
		AppealArgument: sql.NullString{
			String: in.AppealArgument,
			Valid:  in.AppealArgument != "",
		},
		AppealedAt:   nullTime(in.AppealedAt),
		LastReportAt: in.LastReportAt,
		AutoClosed:   in.AutoClosed,
		ClosedAt:     nullTime(in.ClosedAt),
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    nullTime(in.UpdatedAt),
	}
}

type PgReport struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	Seq         int64     `db:"seq"          goqu:"skipinsert,skipupdate"`
	IncidenceID uuid.UUID `db:"incidence_id"`
	ReporterID  uuid.UUID `db:"reporter_id"`

	Reason  string `db:"reason"`
	Comment string `db:"comment"`
	Source  string `db:"source"`

	CreatedAt time.Time `db:"created_at"`
}

func (p *PgReport) ToDomain() domain.Report {
	return domain.Report{
		ID:          domain.ReportID(p.ID),
		IncidenceID: domain.IncidenceID(p.IncidenceID),
		ReporterID:  domain.UserID(p.ReporterID),
		Reason:      domain.ReportReason(p.Reason),
		Comment:     p.Comment,
		Source:      domain.ReportSource(p.Source),
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgReport) FromDomain(in domain.Report) {
	*p = PgReport{
		ID:          uuid.UUID(in.ID),
		IncidenceID: uuid.UUID(in.IncidenceID),
		ReporterID:  uuid.UUID(in.ReporterID),
		Reason:      string(in.Reason),
		Comment:     in.Comment,
		Source:      string(in.Source),
		CreatedAt:   in.CreatedAt,
	}
}

type PgPublication struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	OwnerID uuid.UUID `db:"owner_id"`

	Name        string `db:"name"`
	Description string `db:"description"`
	Status      string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPublication) ToDomain() domain.Publication {
	return domain.Publication{
		ID:          domain.PublicationID(p.ID),
		OwnerID:     domain.UserID(p.OwnerID),
		Name:        p.Name,
		Description: p.Description,
		Status:      domain.PublicationStatus(p.Status),
	}
}

func (p *PgPublication) FromDomain(in domain.Publication) {
	status := in.Status
	if status == "" {
		status = domain.PublicationStatusVisible
	}

	*p = PgPublication{
		ID:          uuid.UUID(in.ID),
		OwnerID:     uuid.UUID(in.OwnerID),
		Name:        in.Name,
		Description: in.Description,
		Status:      string(status),
	}
}

type PgUser struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Gender    string    `db:"gender"     goqu:"defaultifempty"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() domain.User {
	return domain.User{
		ID:        domain.UserID(p.ID),
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
	}
}

func (p *PgUser) FromDomain(in domain.User) {
	*p = PgUser{
		ID:        uuid.UUID(in.ID),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Gender:    in.Gender,
	}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func toDomainSlice[P any, D any](rows []P, conv func(*P) D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, conv(&rows[i]))
	}

	return out
}
