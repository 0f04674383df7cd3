// Package moderation implements the incidence workflow: reports against a
// publication accumulate in an incidence, escalate to review, are claimed and
// decided by a moderator, may be appealed by the seller, and auto-close when
// they go stale.
package moderation

import (
	"context"
	"marketplace/internal/config"
	"marketplace/pkg/cache"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Options configure the workflow. They are typically derived from application
// configuration with NewOptions.
type Options struct {
	// ReportThreshold is the number of reports that escalates an OPEN incidence.
	ReportThreshold int
	// StaleAfter is the inactivity period after which OPEN incidences are closed.
	StaleAfter time.Duration
	// AutoCloseBatchSize bounds the rows closed per statement.
	AutoCloseBatchSize uint
	// SystemUsername is the account automated reports are attributed to.
	SystemUsername string
	// StatusOnDecision, when set, moves an OPEN incidence to this status when a
	// decision is recorded.
	StatusOnDecision domain.IncidenceStatus
	// QueueCacheTTL is how long moderator queue pages are served from cache.
	// Zero disables caching.
	QueueCacheTTL time.Duration
	// ContentCheckMaxAttempts is the retry budget of a content check job.
	ContentCheckMaxAttempts int
	// ContentCheckUniquePeriod deduplicates content check requests.
	ContentCheckUniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ReportThreshold:          cfg.Moderation.ReportThreshold,
		StaleAfter:               cfg.Moderation.StaleAfter,
		AutoCloseBatchSize:       cfg.Moderation.AutoCloseBatchSize,
		SystemUsername:           cfg.Moderation.SystemUsername,
		StatusOnDecision:         domain.IncidenceStatus(cfg.Moderation.StatusOnDecision),
		QueueCacheTTL:            cfg.Redis.QueueCacheTTL,
		ContentCheckMaxAttempts:  cfg.Worker.ContentCheckMaxAttempts,
		ContentCheckUniquePeriod: cfg.Worker.ContentCheckUniquePeriod,
	}
}

func (o Options) withDefaults() Options {
	if o.ReportThreshold <= 0 {
		o.ReportThreshold = DefaultReportThreshold
	}
	if o.StaleAfter <= 0 {
		o.StaleAfter = 24 * time.Hour
	}
	if o.AutoCloseBatchSize == 0 {
		o.AutoCloseBatchSize = 500
	}
	if o.SystemUsername == "" {
		o.SystemUsername = "system_user"
	}
	if o.StatusOnDecision == domain.IncidenceStatusClosed {
		// a closed incidence could not be appealed
		o.StatusOnDecision = ""
	}

	return o
}

// ContentDetector finds dangerous words in publication text.
type ContentDetector interface {
	FindDangerousWords(text string) []string
}

// Deps are the collaborators of the workflow.
type Deps struct {
	Storage storage.Storage
	// Cache holds moderator queue pages. Optional.
	Cache cache.Cache
	// Detector backs CheckContent. Optional.
	Detector ContentDetector
	// Now is the clock. Defaults to time.Now in UTC.
	Now func() time.Time
}

type service struct {
	options  Options
	storage  storage.Storage
	cache    cache.Cache
	detector ContentDetector
	policy   Policy
	now      func() time.Time
	tracer   trace.Tracer
}

// New creates a new Service backed by the provided dependencies and
// configured with the given options.
func New(deps Deps, options Options) Service {
	options = options.withDefaults()

	s := &service{
		options:  options,
		storage:  deps.Storage,
		cache:    deps.Cache,
		detector: deps.Detector,
		policy:   Policy{Threshold: options.ReportThreshold},
		now:      deps.Now,
		tracer:   otel.Tracer("marketplace/internal/moderation"),
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}

	return s
}

func (s *service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "moderation."+name, trace.WithAttributes(attrs...)) //nolint: spancheck
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
