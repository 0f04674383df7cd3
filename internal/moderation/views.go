package moderation

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
	"time"

	"golang.org/x/sync/errgroup"
)

// IncidenceDetails is the moderator facing view of an incidence.
type IncidenceDetails struct {
	ID           domain.IncidenceID     `json:"id"`
	Status       domain.IncidenceStatus `json:"status"`
	Decision     domain.Decision        `json:"decision,omitempty"`
	AutoClosed   bool                   `json:"autoClosed"`
	CreatedAt    time.Time              `json:"createdAt"`
	LastReportAt time.Time              `json:"lastReportAt"`
	ModeratorID  *domain.UserID         `json:"moderatorId,omitempty"`
	Publication  PublicationSummary     `json:"publication"`
	Reports      []ReportDetails        `json:"reports"`
}

type PublicationSummary struct {
	ID          domain.PublicationID     `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Status      domain.PublicationStatus `json:"status"`
}

type ReportDetails struct {
	ID        domain.ReportID     `json:"id"`
	Reason    domain.ReportReason `json:"reason"`
	Comment   string              `json:"comment"`
	Source    domain.ReportSource `json:"source"`
	CreatedAt time.Time           `json:"createdAt"`
	Reporter  ReporterSummary     `json:"reporter"`
}

type ReporterSummary struct {
	ID        domain.UserID `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Gender    string        `json:"gender"`
}

// assemble builds the views for incidences. Publications and reporters are
// loaded with one query each, concurrently.
func assemble(ctx context.Context, st storage.AllStorage, incidences []domain.Incidence) ([]IncidenceDetails, error) {
	if len(incidences) == 0 {
		return []IncidenceDetails{}, nil
	}

	publicationIDs := make([]domain.PublicationID, 0, len(incidences))
	var userIDs []domain.UserID
	seenUsers := map[domain.UserID]struct{}{}
	for _, inc := range incidences {
		publicationIDs = append(publicationIDs, inc.PublicationID)
		for _, r := range inc.Reports {
			if _, ok := seenUsers[r.ReporterID]; ok {
				continue
			}
			seenUsers[r.ReporterID] = struct{}{}
			userIDs = append(userIDs, r.ReporterID)
		}
	}

	var (
		publications []domain.Publication
		users        []domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := st.PublicationsByIDs(gctx, publicationIDs...)
		if err != nil {
			return fmt.Errorf("could not load publications: %w", err)
		}
		publications = res

		return nil
	})
	g.Go(func() error {
		res, err := st.UsersByIDs(gctx, userIDs...)
		if err != nil {
			return fmt.Errorf("could not load reporters: %w", err)
		}
		users = res

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	publicationsByID := make(map[domain.PublicationID]domain.Publication, len(publications))
	for _, p := range publications {
		publicationsByID[p.ID] = p
	}
	usersByID := make(map[domain.UserID]domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	res := make([]IncidenceDetails, 0, len(incidences))
	for _, inc := range incidences {
		pub := publicationsByID[inc.PublicationID]

		reports := make([]ReportDetails, 0, len(inc.Reports))
		for _, r := range inc.Reports {
			reporter := usersByID[r.ReporterID]
			reports = append(reports, ReportDetails{
				ID:        r.ID,
				Reason:    r.Reason,
				Comment:   r.Comment,
				Source:    r.Source,
				CreatedAt: r.CreatedAt,
				Reporter: ReporterSummary{
					ID:        r.ReporterID,
					FirstName: reporter.FirstName,
					LastName:  reporter.LastName,
					Gender:    reporter.Gender,
				},
			})
		}

		res = append(res, IncidenceDetails{
			ID:           inc.ID,
			Status:       inc.Status,
			Decision:     inc.Decision,
			AutoClosed:   inc.AutoClosed,
			CreatedAt:    inc.CreatedAt,
			LastReportAt: inc.LastReportAt,
			ModeratorID:  inc.ModeratorID,
			Publication: PublicationSummary{
				ID:          inc.PublicationID,
				Name:        pub.Name,
				Description: pub.Description,
				Status:      pub.Status,
			},
			Reports: reports,
		})
	}

	return res, nil
}
