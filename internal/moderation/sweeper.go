package moderation

import (
	"context"
	"fmt"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// AutoClose closes OPEN incidences that received no report for StaleAfter.
// It works in batches, each one short statement that skips rows locked by
// in-flight transactions, so it never blocks reporters or moderators. Running
// it again right away closes nothing.
func (s *service) AutoClose(ctx context.Context) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "AutoClose")
	defer func() { endSpan(span, err) }()

	start := time.Now()
	defer func() { metrics.AutoCloseDuration.Observe(time.Since(start).Seconds()) }()

	now := s.now()
	cutoff := now.Add(-s.options.StaleAfter)
	batch := s.options.AutoCloseBatchSize

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("auto close interrupted: %w", err)
		}

		closed, err := s.storage.AutoCloseStaleIncidences(ctx, cutoff, now, batch)
		if err != nil {
			return total, fmt.Errorf("could not auto close incidences: %w", err)
		}
		total += closed
		metrics.AutoClosed.Add(float64(closed))

		if closed < int64(batch) { //nolint: gosec
			break
		}
	}

	span.SetAttributes(attribute.Int64("incidences.closed", total))
	logger.Info(ctx, "auto close finished",
		zap.Int64("closed", total),
		zap.Time("cutoff", cutoff))

	return total, nil
}
