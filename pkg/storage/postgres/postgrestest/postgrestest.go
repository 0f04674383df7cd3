// Package postgrestest starts a disposable PostgreSQL container with the
// application schema for integration tests.
package postgrestest

import (
	"context"
	"database/sql"
	"fmt"
	root "marketplace"
	"marketplace/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	User     = "postgres"
	Password = "postgres"
	Database = "testdb"
)

// Options tweaks the storage created by Setup.
type Options struct {
	// River also applies the job queue schema.
	River bool
	// TxMaxRetries is passed to postgres.Options.
	TxMaxRetries uint64
	// MaxOpenConnections defaults to 10.
	MaxOpenConnections int
}

type container struct {
	testcontainers.Container
	Host string
	Port int
}

func start(ctx context.Context) (*container, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     User,
			"POSTGRES_PASSWORD": Password,
			"POSTGRES_DB":       Database,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &container{
		Container: c,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// MigrateRiver applies the River job queue schema.
func MigrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return fmt.Errorf("could not run river migrations: %w", err)
	}

	return nil
}

// Setup starts a container, connects to it and applies migrations. Everything
// is torn down when the test finishes.
func Setup(t *testing.T, opts Options) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	if opts.MaxOpenConnections == 0 {
		opts.MaxOpenConnections = 10
	}

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           User,
		Password:           Password,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           Database,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: opts.MaxOpenConnections,
		MaxIdleConnections: 2,
		TxMaxRetries:       opts.TxMaxRetries,
		TxRetryMaxElapsed:  10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgSQL.Close()
	})

	require.NoError(t, pgSQL.Ping(ctx, 30*time.Second))

	db := pgSQL.DB.(*sql.DB)
	require.NoError(t, Migrate(db))
	if opts.River {
		require.NoError(t, MigrateRiver(ctx, db))
	}

	return pgSQL
}
