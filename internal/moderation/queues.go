package moderation

import (
	"context"
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/storage"

	"go.uber.org/zap"
)

// UnreviewedIncidences returns the queue of incidences waiting for a
// moderator: OPEN or UNDER_REVIEW, unclaimed and undecided, newest first.
func (s *service) UnreviewedIncidences(ctx context.Context, page Page) (_ *IncidencePage, err error) {
	ctx, span := s.startSpan(ctx, "UnreviewedIncidences")
	defer func() { endSpan(span, err) }()

	page = page.Normalize()
	key := fmt.Sprintf("queue:unreviewed:%d:%d", page.Number, page.Size)

	return s.cachedPage(ctx, key, page, func() (storage.IncidencePage, error) {
		return s.storage.UnreviewedIncidences(ctx, page.offset(), page.Size)
	})
}

// ReviewedIncidences returns the incidences claimed by the moderator, newest
// first.
func (s *service) ReviewedIncidences(ctx context.Context,
	moderatorID domain.UserID,
	page Page) (_ *IncidencePage, err error) {
	ctx, span := s.startSpan(ctx, "ReviewedIncidences")
	defer func() { endSpan(span, err) }()

	page = page.Normalize()
	key := fmt.Sprintf("queue:reviewed:%s:%d:%d", moderatorID, page.Number, page.Size)

	return s.cachedPage(ctx, key, page, func() (storage.IncidencePage, error) {
		return s.storage.ModeratorIncidences(ctx, moderatorID, page.offset(), page.Size)
	})
}

// cachedPage serves a queue page from cache when possible. Cache errors are
// logged and the page is read from storage.
func (s *service) cachedPage(ctx context.Context,
	key string,
	page Page,
	load func() (storage.IncidencePage, error)) (*IncidencePage, error) {
	if s.options.QueueCacheTTL > 0 {
		var cached IncidencePage
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn(ctx, "could not read queue cache", zap.String("key", key), zap.Error(err))
		}
		if found {
			return &cached, nil
		}
	}

	res, err := load()
	if err != nil {
		return nil, fmt.Errorf("could not get incidences: %w", err)
	}

	items, err := assemble(ctx, s.storage, res.Incidences)
	if err != nil {
		return nil, fmt.Errorf("could not assemble incidences: %w", err)
	}

	out := &IncidencePage{
		Items:  items,
		Number: page.Number,
		Size:   page.Size,
		Total:  res.Total,
	}

	if s.options.QueueCacheTTL > 0 {
		if err := s.cache.Set(ctx, key, out, s.options.QueueCacheTTL); err != nil {
			logger.Warn(ctx, "could not write queue cache", zap.String("key", key), zap.Error(err))
		}
	}

	return out, nil
}
