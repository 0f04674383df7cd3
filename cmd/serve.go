package main

import (
	"context"
	"errors"
	"marketplace/internal/api"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/config"
	"marketplace/internal/moderation"
	"marketplace/internal/worker"
	"marketplace/pkg/logger"
	"marketplace/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, service moderation.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Moderation: service},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	service moderation.Service,
	autoCloseOnStart bool) func(ctx context.Context) {
	options := worker.NewOptions(cfg)
	options.AutoCloseOnStart = autoCloseOnStart

	client, err := worker.Start(ctx, pgsql.Pool, service, options)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			withAPI, _ := cmd.Flags().GetBool("api")
			withWorkers, _ := cmd.Flags().GetBool("workers")
			autoCloseOnStart, _ := cmd.Flags().GetBool("auto-close-on-start")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, closeCache := getCache(ctx, cfg)
			defer closeCache()

			service := getModeration(ctx, cfg, pgsql, c)

			var stoppers []func(ctx context.Context)
			if withWorkers {
				stoppers = append(stoppers, setupWorkers(ctx, cfg, pgsql, service, autoCloseOnStart))
			}
			if withAPI {
				stoppers = append(stoppers, setupServer(ctx, cfg, service))
			}
			if len(stoppers) == 0 {
				logger.Warn(ctx, "nothing to run, both api and workers are disabled")

				return
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			// stop the webserver first so no new jobs are enqueued while workers drain
			for i := len(stoppers) - 1; i >= 0; i-- {
				stoppers[i](shutdownCtx)
			}
		},
	}

	cmd.Flags().Bool("api", true, "Serve the HTTP API")
	cmd.Flags().Bool("workers", true, "Run the background workers")
	cmd.Flags().Bool("auto-close-on-start", false, "Run the auto-close sweep right after the workers start")

	return cmd
}
