package moderation

import (
	"context"
	"marketplace/pkg/domain"
	"time"
)

//go:generate mockgen -package mockmoderation -source=interface.go -destination=mock/mockmoderation.go *
type Service interface {
	ReportByUser(ctx context.Context, report UserReport) (*ReportOutcome, error)
	ReportBySystem(ctx context.Context, report SystemReport) (*ReportOutcome, error)
	Claim(ctx context.Context, incidenceID domain.IncidenceID, moderatorID domain.UserID) (*ClaimOutcome, error)
	MakeDecision(ctx context.Context,
		incidenceID domain.IncidenceID,
		moderatorID domain.UserID,
		decision domain.Decision) (*DecisionOutcome, error)
	Appeal(ctx context.Context,
		incidenceID domain.IncidenceID,
		sellerID domain.UserID,
		argument string) (*AppealOutcome, error)
	UnreviewedIncidences(ctx context.Context, page Page) (*IncidencePage, error)
	ReviewedIncidences(ctx context.Context, moderatorID domain.UserID, page Page) (*IncidencePage, error)
	AutoClose(ctx context.Context) (int64, error)
	RequestContentCheck(ctx context.Context, publicationID domain.PublicationID) (bool, error)
	CheckContent(ctx context.Context, publicationID domain.PublicationID) (*ReportOutcome, error)
}

// UserReport is a complaint filed by a marketplace user.
type UserReport struct {
	PublicationID domain.PublicationID
	ReporterID    domain.UserID
	Reason        domain.ReportReason
	Comment       string
}

// SystemReport is a flag raised by an automated check. It is filed as the
// configured system user.
type SystemReport struct {
	PublicationID domain.PublicationID
	Reason        domain.ReportReason
	Comment       string
}

type ReportOutcome struct {
	IncidenceID   domain.IncidenceID     `json:"incidenceId"`
	PublicationID domain.PublicationID   `json:"publicationId"`
	Status        domain.IncidenceStatus `json:"status"`
	Message       string                 `json:"message"`
	CreatedAt     time.Time              `json:"createdAt"`
}

type ClaimOutcome struct {
	IncidenceID   domain.IncidenceID `json:"incidenceId"`
	ModeratorID   domain.UserID      `json:"moderatorId"`
	ModeratorName string             `json:"moderatorName"`
	Message       string             `json:"message"`
}

type DecisionOutcome struct {
	IncidenceID domain.IncidenceID     `json:"incidenceId"`
	Decision    domain.Decision        `json:"decision"`
	Status      domain.IncidenceStatus `json:"status"`
	DecidedAt   time.Time              `json:"decidedAt"`
	Message     string                 `json:"message"`
}

type AppealOutcome struct {
	IncidenceID domain.IncidenceID     `json:"incidenceId"`
	Status      domain.IncidenceStatus `json:"status"`
	AppealedAt  time.Time              `json:"appealedAt"`
	Message     string                 `json:"message"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page selects a window of a moderator queue. Number is zero based.
type Page struct {
	Number uint
	Size   uint
}

// Normalize applies the default size and caps it at MaxPageSize.
func (p Page) Normalize() Page {
	switch {
	case p.Size == 0:
		p.Size = DefaultPageSize
	case p.Size > MaxPageSize:
		p.Size = MaxPageSize
	}

	return p
}

func (p Page) offset() uint { return p.Number * p.Size }

// IncidencePage is one page of a moderator queue.
type IncidencePage struct {
	Items  []IncidenceDetails `json:"items"`
	Number uint               `json:"number"`
	Size   uint               `json:"size"`
	Total  int64              `json:"total"`
}
