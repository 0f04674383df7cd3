// Package cache provides a small key/value cache used for short lived read
// models such as the moderator queues.
package cache

import (
	"context"
	"time"
)

// Cache stores JSON encodable values under string keys.
type Cache interface {
	// Get decodes the value stored under key into dst. It returns false on a
	// miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes the keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// Noop is a Cache that never stores anything.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error               { return nil }
