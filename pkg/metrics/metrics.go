// Package metrics holds the prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// Reports counts submitted reports by source (USER, SYSTEM) and outcome
	// (created, attached, or the rejection code).
	Reports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "reports_total",
		Help:      "Submitted reports by source and outcome.",
	}, []string{"source", "outcome"})

	// Escalations counts incidences moved to UNDER_REVIEW.
	Escalations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "escalations_total",
		Help:      "Incidences escalated to under review.",
	})

	// Claims counts claim attempts by outcome.
	Claims = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "claims_total",
		Help:      "Claim attempts by outcome.",
	}, []string{"outcome"})

	// Decisions counts recorded decisions.
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "decisions_total",
		Help:      "Recorded moderator decisions.",
	}, []string{"decision"})

	// Appeals counts accepted appeals.
	Appeals = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "appeals_total",
		Help:      "Appeals filed by sellers.",
	})

	// AutoClosed counts incidences closed by the stale sweep.
	AutoClosed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "auto_closed_total",
		Help:      "Incidences closed for inactivity.",
	})

	// AutoCloseDuration observes the duration of a whole sweep.
	AutoCloseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "moderation",
		Name:      "auto_close_duration_seconds",
		Help:      "Duration of auto-close sweeps.",
		Buckets:   DefaultBuckets,
	})

	// CacheRequests counts queue cache lookups by result (hit, miss, error).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Cache lookups by result.",
	}, []string{"result"})
)
