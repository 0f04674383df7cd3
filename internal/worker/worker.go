// Package worker runs the background jobs of the moderation workflow on a
// River queue: content checks enqueued by the API and the periodic
// auto-close sweep.
package worker

import (
	"context"
	"fmt"
	"marketplace/internal/config"
	"marketplace/internal/moderation"
	"marketplace/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultConcurrency       = 10
	DefaultAutoCloseSchedule = "*/15 * * * *"
)

// Options configures the queue client.
type Options struct {
	// Concurrency is the number of jobs worked at the same time.
	Concurrency int
	// AutoCloseSchedule is a standard five field cron expression. Empty
	// disables the periodic sweep.
	AutoCloseSchedule string
	// AutoCloseOnStart also runs the sweep right after the client starts.
	AutoCloseOnStart bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:       cfg.Worker.Concurrency,
		AutoCloseSchedule: cfg.Worker.AutoCloseSchedule,
	}
}

// Config builds the River configuration for the workers. It is separate from
// Start so tests can run the same workers through rivertest.
func Config(ctx context.Context, service moderation.Service, options Options) (*river.Config, error) {
	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewContentCheckWorker(service))
	river.AddWorker(workers, NewAutoCloseWorker(service))

	var periodic []*river.PeriodicJob
	if options.AutoCloseSchedule != "" {
		schedule, err := cron.ParseStandard(options.AutoCloseSchedule)
		if err != nil {
			return nil, fmt.Errorf("could not parse auto close schedule %q: %w", options.AutoCloseSchedule, err)
		}

		periodic = append(periodic, river.NewPeriodicJob(
			schedule,
			func() (river.JobArgs, *river.InsertOpts) {
				return moderation.AutoCloseJobArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: options.AutoCloseOnStart},
		))
	}

	return &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.Concurrency},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       logger.Slog(ctx),
	}, nil
}

// Start creates and starts the River client. Callers stop it with
// client.Stop during shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service moderation.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	config, err := Config(ctx, service, options)
	if err != nil {
		return nil, err
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), config)
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	logger.Info(ctx, "workers started",
		zap.Int("concurrency", config.Queues[river.QueueDefault].MaxWorkers),
		zap.String("autoCloseSchedule", options.AutoCloseSchedule))

	return riverClient, nil
}
