package moderation_test

import (
	"context"
	"fmt"
	"marketplace/internal/moderation"
	"marketplace/internal/safety"
	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage/postgres"
	"marketplace/pkg/storage/postgres/postgrestest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

type fixture struct {
	pg          *postgres.PgSQL
	clock       *clock
	service     moderation.Service
	seller      domain.User
	publication domain.Publication
	users       []domain.User
}

func setupFixture(t *testing.T, opts moderation.Options) *fixture {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	pg := postgrestest.Setup(t, postgrestest.Options{TxMaxRetries: 10, MaxOpenConnections: 20})

	users := make([]domain.User, 0, 12)
	for i := range 12 {
		users = append(users, domain.User{
			Username:  fmt.Sprintf("user%02d", i),
			FirstName: "User",
			LastName:  fmt.Sprintf("%02d", i),
		})
	}
	users, err := pg.StoreUsers(ctx, users...)
	require.NoError(t, err)

	publications, err := pg.StorePublications(ctx, domain.Publication{
		OwnerID:     users[0].ID,
		Name:        "Antique handgun",
		Description: "decorative, no ammunition",
	})
	require.NoError(t, err)

	c := &clock{now: time.Now().UTC().Truncate(time.Microsecond)}

	return &fixture{
		pg:    pg,
		clock: c,
		service: moderation.New(moderation.Deps{
			Storage:  pg,
			Detector: safety.New(),
			Now:      c.Now,
		}, opts),
		seller:      users[0],
		publication: publications[0],
		users:       users[1:],
	}
}

func TestIntegration_ConcurrentSystemReports(t *testing.T) {
	f := setupFixture(t, moderation.Options{})
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.ReportBySystem(ctx, moderation.SystemReport{
				PublicationID: f.publication.ID,
				Reason:        domain.ReportReasonProhibitedItem,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	active, err := f.pg.ActiveIncidenceByPublication(ctx, f.publication.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, domain.IncidenceStatusUnderReview, active.Status)
	require.Len(t, active.Reports, n)

	page, err := f.pg.UnreviewedIncidences(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)

	publication, err := f.pg.PublicationByID(ctx, f.publication.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PublicationStatusUnderReview, publication.Status)
}

func TestIntegration_ConcurrentUserReports(t *testing.T) {
	f := setupFixture(t, moderation.Options{ReportThreshold: 3})
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for _, u := range f.users[:8] {
		wg.Add(1)
		go func(reporter domain.UserID) {
			defer wg.Done()
			_, err := f.service.ReportByUser(ctx, moderation.UserReport{
				PublicationID: f.publication.ID,
				ReporterID:    reporter,
				Reason:        domain.ReportReasonScam,
			})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++

				return
			}
			assert.ErrorIs(t, err, moderation.ErrPublicationUnderReview)
			rejected++
		}(u.ID)
	}
	wg.Wait()

	require.Equal(t, 3, accepted)
	require.Equal(t, 5, rejected)

	active, err := f.pg.ActiveIncidenceByPublication(ctx, f.publication.ID)
	require.NoError(t, err)
	require.Equal(t, domain.IncidenceStatusUnderReview, active.Status)
	require.Len(t, active.Reports, 3)
}

func TestIntegration_ClaimRace(t *testing.T) {
	f := setupFixture(t, moderation.Options{})
	ctx := context.Background()

	report, err := f.service.ReportByUser(ctx, moderation.UserReport{
		PublicationID: f.publication.ID,
		ReporterID:    f.users[0].ID,
		Reason:        domain.ReportReasonMisleading,
	})
	require.NoError(t, err)
	require.Equal(t, domain.IncidenceStatusOpen, report.Status)

	moderators := f.users[1:9]
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []domain.UserID
	)
	for _, m := range moderators {
		wg.Add(1)
		go func(moderatorID domain.UserID) {
			defer wg.Done()
			out, err := f.service.Claim(ctx, report.IncidenceID, moderatorID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, out.ModeratorID)

				return
			}
			assert.ErrorIs(t, err, moderation.ErrIncidenceAlreadyClaimed)
		}(m.ID)
	}
	wg.Wait()

	require.Len(t, winners, 1)

	incidence, err := f.pg.IncidenceByID(ctx, report.IncidenceID)
	require.NoError(t, err)
	require.True(t, incidence.ClaimedBy(winners[0]))

	reviewed, err := f.service.ReviewedIncidences(ctx, winners[0], moderation.Page{})
	require.NoError(t, err)
	require.Equal(t, int64(1), reviewed.Total)
	require.Equal(t, report.IncidenceID, reviewed.Items[0].ID)

	unreviewed, err := f.service.UnreviewedIncidences(ctx, moderation.Page{})
	require.NoError(t, err)
	require.Equal(t, int64(0), unreviewed.Total)
}

func TestIntegration_DecisionAndAppeal(t *testing.T) {
	f := setupFixture(t, moderation.Options{})
	ctx := context.Background()
	moderatorID := f.users[5].ID

	report, err := f.service.ReportByUser(ctx, moderation.UserReport{
		PublicationID: f.publication.ID,
		ReporterID:    f.users[0].ID,
		Reason:        domain.ReportReasonScam,
		Comment:       "never shipped",
	})
	require.NoError(t, err)

	_, err = f.service.Claim(ctx, report.IncidenceID, moderatorID)
	require.NoError(t, err)

	_, err = f.service.Appeal(ctx, report.IncidenceID, f.seller.ID, "too early")
	require.ErrorIs(t, err, moderation.ErrIncidenceNotDecided)

	decision, err := f.service.MakeDecision(ctx, report.IncidenceID, moderatorID, domain.DecisionAccepted)
	require.NoError(t, err)
	require.Equal(t, domain.IncidenceStatusOpen, decision.Status)

	_, err = f.service.MakeDecision(ctx, report.IncidenceID, moderatorID, domain.DecisionRejected)
	require.ErrorIs(t, err, moderation.ErrIncidenceAlreadyDecided)

	// decided incidences accept no more reports
	_, err = f.service.ReportByUser(ctx, moderation.UserReport{
		PublicationID: f.publication.ID,
		ReporterID:    f.users[1].ID,
		Reason:        domain.ReportReasonScam,
	})
	require.ErrorIs(t, err, moderation.ErrIncidenceAlreadyDecided)

	_, err = f.service.Appeal(ctx, report.IncidenceID, f.users[1].ID, "not mine")
	require.ErrorIs(t, err, moderation.ErrNotPublicationOwner)

	appeal, err := f.service.Appeal(ctx, report.IncidenceID, f.seller.ID, "the listing is accurate")
	require.NoError(t, err)
	require.Equal(t, domain.IncidenceStatusAppealed, appeal.Status)

	_, err = f.service.Appeal(ctx, report.IncidenceID, f.seller.ID, "again")
	require.ErrorIs(t, err, moderation.ErrIncidenceAlreadyAppealed)

	_, err = f.service.ReportBySystem(ctx, moderation.SystemReport{
		PublicationID: f.publication.ID,
		Reason:        domain.ReportReasonDangerousContent,
	})
	require.ErrorIs(t, err, moderation.ErrIncidenceAppealed)
	require.ErrorIs(t, err, serrors.ErrConflict)

	incidence, err := f.pg.IncidenceByID(ctx, report.IncidenceID)
	require.NoError(t, err)
	require.Equal(t, "the listing is accurate", incidence.AppealArgument)
	require.Len(t, incidence.Reports, 1)
}

func TestIntegration_AutoClose(t *testing.T) {
	f := setupFixture(t, moderation.Options{StaleAfter: 24 * time.Hour, AutoCloseBatchSize: 1})
	ctx := context.Background()

	now := f.clock.Now()
	f.clock.Set(now.Add(-25 * time.Hour))
	stale, err := f.service.ReportByUser(ctx, moderation.UserReport{
		PublicationID: f.publication.ID,
		ReporterID:    f.users[0].ID,
		Reason:        domain.ReportReasonSpam,
	})
	require.NoError(t, err)

	fresh, err := f.pg.StorePublications(ctx, domain.Publication{OwnerID: f.seller.ID, Name: "Oak table"})
	require.NoError(t, err)
	f.clock.Set(now.Add(-time.Hour))
	_, err = f.service.ReportByUser(ctx, moderation.UserReport{
		PublicationID: fresh[0].ID,
		ReporterID:    f.users[0].ID,
		Reason:        domain.ReportReasonSpam,
	})
	require.NoError(t, err)

	f.clock.Set(now)
	closed, err := f.service.AutoClose(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), closed)

	incidence, err := f.pg.IncidenceByID(ctx, stale.IncidenceID)
	require.NoError(t, err)
	require.Equal(t, domain.IncidenceStatusClosed, incidence.Status)
	require.True(t, incidence.AutoClosed)

	f.clock.Set(now.Add(time.Second))
	closed, err = f.service.AutoClose(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), closed)

	// a closed incidence frees the slot for a new one
	report, err := f.service.ReportByUser(ctx, moderation.UserReport{
		PublicationID: f.publication.ID,
		ReporterID:    f.users[1].ID,
		Reason:        domain.ReportReasonScam,
	})
	require.NoError(t, err)
	require.NotEqual(t, stale.IncidenceID, report.IncidenceID)
	require.Equal(t, domain.IncidenceStatusOpen, report.Status)
}

func TestIntegration_AutoCloseRacesReports(t *testing.T) {
	f := setupFixture(t, moderation.Options{StaleAfter: 24 * time.Hour, ReportThreshold: 100})
	ctx := context.Background()

	now := f.clock.Now()
	for round := range 5 {
		publications, err := f.pg.StorePublications(ctx, domain.Publication{
			OwnerID: f.seller.ID,
			Name:    fmt.Sprintf("Lamp %d", round),
		})
		require.NoError(t, err)
		publicationID := publications[0].ID

		f.clock.Set(now.Add(-25 * time.Hour))
		stale, err := f.service.ReportByUser(ctx, moderation.UserReport{
			PublicationID: publicationID,
			ReporterID:    f.users[0].ID,
			Reason:        domain.ReportReasonSpam,
		})
		require.NoError(t, err)
		f.clock.Set(now)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			reports []*moderation.ReportOutcome
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.AutoClose(ctx)
			assert.NoError(t, err)
		}()
		for _, u := range f.users[1:5] {
			wg.Add(1)
			go func() {
				defer wg.Done()
				out, err := f.service.ReportByUser(ctx, moderation.UserReport{
					PublicationID: publicationID,
					ReporterID:    u.ID,
					Reason:        domain.ReportReasonScam,
				})
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				reports = append(reports, out)
				mu.Unlock()
			}()
		}
		wg.Wait()
		require.Len(t, reports, 4)

		// every fresh report lives on an incidence that is still open
		for _, out := range reports {
			incidence, err := f.pg.IncidenceByID(ctx, out.IncidenceID)
			require.NoError(t, err)
			require.Equal(t, domain.IncidenceStatusOpen, incidence.Status)
			require.Equal(t, domain.IncidenceStatusOpen, out.Status)
		}

		// a closed incidence only holds reports from before the cutoff
		closed, err := f.pg.IncidenceByID(ctx, stale.IncidenceID)
		require.NoError(t, err)
		if closed.Status == domain.IncidenceStatusClosed {
			require.Len(t, closed.Reports, 1)
			require.True(t, closed.AutoClosed)
		} else {
			require.Len(t, closed.Reports, 5)
		}
	}
}

func TestIntegration_CheckContent(t *testing.T) {
	f := setupFixture(t, moderation.Options{})
	ctx := context.Background()

	out, err := f.service.CheckContent(ctx, f.publication.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, domain.IncidenceStatusUnderReview, out.Status)

	incidence, err := f.pg.IncidenceByID(ctx, out.IncidenceID)
	require.NoError(t, err)
	require.Len(t, incidence.Reports, 1)
	require.Equal(t, domain.ReportSourceSystem, incidence.Reports[0].Source)
	require.Equal(t, "dangerous content detected: handgun, ammunition", incidence.Reports[0].Comment)

	clean, err := f.pg.StorePublications(ctx, domain.Publication{OwnerID: f.seller.ID, Name: "Oak table"})
	require.NoError(t, err)
	out, err = f.service.CheckContent(ctx, clean[0].ID)
	require.NoError(t, err)
	require.Nil(t, out)
}
