// Package main provides the CLI entrypoint for the marketplace moderation service.
// It wires subcommands (serve, autoclose, migrate, jwt), loads configuration,
// and initializes logging and error reporting.
package main

import (
	"context"
	"flag"
	"log"
	"marketplace/internal/config"
	"marketplace/internal/moderation"
	"marketplace/internal/safety"
	"marketplace/pkg/cache"
	"marketplace/pkg/logger"
	"marketplace/pkg/storage/postgres"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values, waits for
// the database to become reachable and returns it along with a cleanup function
// to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		TxMaxRetries:       cfg.Database.TxMaxRetries,
		TxRetryMaxElapsed:  cfg.Database.TxRetryMaxElapsed,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	if err := pgsql.Ping(ctx, cfg.Database.PingTimeout); err != nil {
		logger.Fatal(ctx, "could not reach postgres", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getCache returns the moderator queue cache. Without a redis address it
// returns a cache that never hits.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis is not configured, queue cache disabled")

		return cache.Noop{}, func() {}
	}

	rds := cache.NewRedis(cache.RedisOptions{
		Addr:           cfg.Redis.Addr,
		Password:       cfg.Redis.Password,
		DB:             cfg.Redis.DB,
		Prefix:         "marketplace:",
		BreakerTimeout: cfg.Redis.BreakerTimeout,
	})
	if err := rds.Ping(ctx); err != nil {
		// the breaker keeps requests flowing to postgres while redis is down
		logger.Warn(ctx, "could not reach redis", zap.Error(err))
	}

	return rds, func() {
		logger.Info(ctx, "closing redis client...")
		if err := rds.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getModeration builds the moderation service on top of the shared storage and cache.
func getModeration(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, c cache.Cache) moderation.Service {
	detector, err := safety.NewFromFile(cfg.Moderation.Dictionary)
	if err != nil {
		logger.Fatal(ctx, "could not load dangerous content dictionary", zap.Error(err))
	}

	return moderation.New(moderation.Deps{
		Storage:  pgsql,
		Cache:    c,
		Detector: detector,
	}, moderation.NewOptions(cfg))
}

// setupSentry initializes error reporting when a DSN is configured and returns
// a flush function.
func setupSentry(cfg *config.Config) func() {
	if cfg.Sentry.DSN == "" {
		return func() {}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Environment,
		EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
	}); err != nil {
		log.Println("could not initialize sentry", err)

		return func() {}
	}

	return func() { sentry.Flush(2 * time.Second) }
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "marketplace",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	flushSentry := setupSentry(cfg)
	logger.Setup(cfg.Environment, zap.String("service", "marketplace"))

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			sentry.CurrentHub().Recover(p)
			flushSentry()
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		autoCloseCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	flushSentry()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
