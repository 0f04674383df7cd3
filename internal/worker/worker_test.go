package worker_test

import (
	"context"
	"database/sql"
	"errors"
	"marketplace/internal/moderation"
	mockmoderation "marketplace/internal/moderation/mock"
	"marketplace/internal/safety"
	"marketplace/internal/worker"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage/postgres/postgrestest"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeContentJob(id int64, publicationID string) *river.Job[moderation.ContentCheckJobArgs] {
	return &river.Job[moderation.ContentCheckJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   moderation.ContentCheckJobArgs{PublicationID: publicationID},
	}
}

func TestContentCheckWorker_Work_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockmoderation.NewMockService(ctrl)
	w := worker.NewContentCheckWorker(mock)

	id := uuid.New()
	mock.EXPECT().CheckContent(gomock.Any(), domain.PublicationID(id)).Return(nil, nil)

	require.NoError(t, w.Work(context.Background(), makeContentJob(1, id.String())))
}

func TestContentCheckWorker_Work_Flagged(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockmoderation.NewMockService(ctrl)
	w := worker.NewContentCheckWorker(mock)

	id := uuid.New()
	mock.EXPECT().CheckContent(gomock.Any(), domain.PublicationID(id)).Return(&moderation.ReportOutcome{
		IncidenceID:   domain.IncidenceID(uuid.New()),
		PublicationID: domain.PublicationID(id),
		Status:        domain.IncidenceStatusUnderReview,
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeContentJob(2, id.String())))
}

func TestContentCheckWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockmoderation.NewMockService(ctrl)
	w := worker.NewContentCheckWorker(mock)

	id := uuid.New()
	mock.EXPECT().CheckContent(gomock.Any(), domain.PublicationID(id)).
		Return(nil, serrors.WithReason(serrors.ErrConflict, moderation.ErrIncidenceAppealed, "appealed"))

	err := w.Work(context.Background(), makeContentJob(3, id.String()))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	require.ErrorIs(t, err, moderation.ErrIncidenceAppealed)
}

func TestContentCheckWorker_Work_InvalidIDCancels(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := worker.NewContentCheckWorker(mockmoderation.NewMockService(ctrl))

	err := w.Work(context.Background(), makeContentJob(4, "not-a-uuid"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestContentCheckWorker_Work_GenericErrorRetried(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockmoderation.NewMockService(ctrl)
	w := worker.NewContentCheckWorker(mock)

	id := uuid.New()
	boom := errors.New("boom")
	mock.EXPECT().CheckContent(gomock.Any(), domain.PublicationID(id)).Return(nil, boom)

	err := w.Work(context.Background(), makeContentJob(5, id.String()))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
}

func TestAutoCloseWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockmoderation.NewMockService(ctrl)
	w := worker.NewAutoCloseWorker(mock)
	job := &river.Job[moderation.AutoCloseJobArgs]{JobRow: &rivertype.JobRow{ID: 6}}

	mock.EXPECT().AutoClose(gomock.Any()).Return(int64(3), nil)
	require.NoError(t, w.Work(context.Background(), job))

	boom := errors.New("boom")
	mock.EXPECT().AutoClose(gomock.Any()).Return(int64(1), boom)
	require.ErrorIs(t, w.Work(context.Background(), job), boom)
}

func TestConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmoderation.NewMockService(ctrl)

	cfg, err := worker.Config(context.Background(), mock, worker.Options{
		AutoCloseSchedule: worker.DefaultAutoCloseSchedule,
	})
	require.NoError(t, err)
	require.Len(t, cfg.PeriodicJobs, 1)
	require.Equal(t, worker.DefaultConcurrency, cfg.Queues[river.QueueDefault].MaxWorkers)

	cfg, err = worker.Config(context.Background(), mock, worker.Options{Concurrency: 3})
	require.NoError(t, err)
	require.Empty(t, cfg.PeriodicJobs)
	require.Equal(t, 3, cfg.Queues[river.QueueDefault].MaxWorkers)

	_, err = worker.Config(context.Background(), mock, worker.Options{AutoCloseSchedule: "every now and then"})
	require.Error(t, err)
}

func TestContentCheckWorker_River(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	pg := postgrestest.Setup(t, postgrestest.Options{River: true})

	users, err := pg.StoreUsers(ctx, domain.User{Username: "seller"})
	require.NoError(t, err)
	publications, err := pg.StorePublications(ctx, domain.Publication{
		OwnerID: users[0].ID,
		Name:    "Fake ID cards",
	})
	require.NoError(t, err)

	service := moderation.New(moderation.Deps{Storage: pg, Detector: safety.New()}, moderation.Options{})

	db := pg.DB.(*sql.DB)
	w := rivertest.NewWorker(t, riverdatabasesql.New(db), &river.Config{}, worker.NewContentCheckWorker(service))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	res, err := w.Work(ctx, t, tx, moderation.ContentCheckJobArgs{
		PublicationID: publications[0].ID.String(),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, river.EventKindJobCompleted, res.EventKind)

	incidence, err := pg.ActiveIncidenceByPublication(ctx, publications[0].ID)
	require.NoError(t, err)
	require.NotNil(t, incidence)
	require.Equal(t, domain.IncidenceStatusUnderReview, incidence.Status)
	require.Equal(t, domain.ReportReasonDangerousContent, incidence.Reports[0].Reason)
}
