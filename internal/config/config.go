package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// cache, authentication, the moderation workflow, background workers, error
// reporting and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins accepted by the CORS middleware. An
		// empty list allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// EnablePprof mounts the runtime profiling handlers under /debug/pprof/
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"marketplace" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// TxMaxRetries is how many times a transaction is re-run after a serialization failure or deadlock
		TxMaxRetries uint64 `env:"DATABASE_TX_MAX_RETRIES" env-default:"5" yaml:"txMaxRetries"`
		// TxRetryMaxElapsed bounds the total time spent retrying one transaction
		TxRetryMaxElapsed time.Duration `env:"DATABASE_TX_RETRY_MAX_ELAPSED" env-default:"2s" yaml:"txRetryMaxElapsed"`
		// PingTimeout is how long startup waits for the database to become reachable
		PingTimeout time.Duration `env:"DATABASE_PING_TIMEOUT" env-default:"30s" yaml:"pingTimeout"`
	} `yaml:"database"`

	// Redis configures the moderator queue cache. An empty Addr disables caching.
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// QueueCacheTTL is how long a moderator queue page is served from cache.
		// It should match the polling interval of the moderator UI.
		QueueCacheTTL time.Duration `env:"REDIS_QUEUE_CACHE_TTL" env-default:"5s" yaml:"queueCacheTTL"`
		// BreakerTimeout is how long the circuit stays open after repeated cache failures
		BreakerTimeout time.Duration `env:"REDIS_BREAKER_TIMEOUT" env-default:"30s" yaml:"breakerTimeout"`
	} `yaml:"redis"`

	// JWT contains bearer token settings.
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of tokens issued by the jwt command
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Moderation contains the incidence workflow settings.
	Moderation struct {
		// ReportThreshold is the number of reports after which an OPEN incidence goes under review
		ReportThreshold int `env:"MODERATION_REPORT_THRESHOLD" env-default:"3" yaml:"reportThreshold"`
		// StaleAfter is how long an OPEN incidence may go without reports before it is auto-closed
		StaleAfter time.Duration `env:"MODERATION_STALE_AFTER" env-default:"24h" yaml:"staleAfter"`
		// AutoCloseBatchSize is the number of incidences closed per statement
		AutoCloseBatchSize uint `env:"MODERATION_AUTO_CLOSE_BATCH_SIZE" env-default:"500" yaml:"autoCloseBatchSize"`
		// SystemUsername is the account automated reports are filed as
		SystemUsername string `env:"MODERATION_SYSTEM_USERNAME" env-default:"system_user" yaml:"systemUsername"`
		// StatusOnDecision optionally moves an OPEN incidence to this status when
		// a decision is recorded. Empty keeps the status unchanged.
		StatusOnDecision string `env:"MODERATION_STATUS_ON_DECISION" env-default:"" yaml:"statusOnDecision"`
		// Dictionary is an optional path to a newline separated list of dangerous words.
		// The embedded list is used when empty.
		Dictionary string `env:"MODERATION_DICTIONARY" env-default:"" yaml:"dictionary"`
	} `yaml:"moderation"`

	// Worker contains background job settings.
	Worker struct {
		// Concurrency is the number of content check jobs processed in parallel
		Concurrency int `env:"WORKER_CONCURRENCY" env-default:"10" yaml:"concurrency"`
		// ContentCheckMaxAttempts is the maximum number of attempts for one content check job
		ContentCheckMaxAttempts int `env:"WORKER_CONTENT_CHECK_MAX_ATTEMPTS" env-default:"5" yaml:"contentCheckMaxAttempts"`
		// ContentCheckUniquePeriod is the window during which a publication is checked at most once
		ContentCheckUniquePeriod time.Duration `env:"WORKER_CONTENT_CHECK_UNIQUE_PERIOD" env-default:"10m" yaml:"contentCheckUniquePeriod"` //nolint: lll
		// AutoCloseSchedule is the cron expression of the periodic auto-close job
		AutoCloseSchedule string `env:"WORKER_AUTO_CLOSE_SCHEDULE" env-default:"*/15 * * * *" yaml:"autoCloseSchedule"`
	} `yaml:"worker"`

	// Sentry configures error reporting. An empty DSN disables it.
	Sentry struct {
		DSN              string  `env:"SENTRY_DSN" env-default:"" yaml:"dsn"`
		TracesSampleRate float64 `env:"SENTRY_TRACES_SAMPLE_RATE" env-default:"0" yaml:"tracesSampleRate"`
	} `yaml:"sentry"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that cannot be expressed with defaults.
func (c *Config) Validate() error {
	switch c.Moderation.StatusOnDecision {
	case "", "UNDER_REVIEW":
	case "CLOSED":
		return errors.New("moderation.statusOnDecision cannot be CLOSED: closed incidences cannot be appealed")
	default:
		return fmt.Errorf("unknown moderation.statusOnDecision %q", c.Moderation.StatusOnDecision)
	}

	if c.Moderation.ReportThreshold < 1 {
		return errors.New("moderation.reportThreshold must be positive")
	}
	if c.Moderation.StaleAfter <= 0 {
		return errors.New("moderation.staleAfter must be positive")
	}
	if c.Moderation.AutoCloseBatchSize == 0 {
		return errors.New("moderation.autoCloseBatchSize must be positive")
	}

	return nil
}
