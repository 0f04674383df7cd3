package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// RedisOptions configures a Redis cache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key.
	Prefix string
	// BreakerTimeout is how long the breaker stays open before probing again.
	BreakerTimeout time.Duration
	// BreakerFailures is the number of consecutive failures that opens the
	// breaker. Defaults to 5.
	BreakerFailures uint32
}

// Redis is a Cache backed by Redis. Calls go through a circuit breaker so an
// unavailable Redis costs one fast failure instead of a network timeout per
// request.
type Redis struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	prefix  string
}

var _ Cache = (*Redis)(nil)

func NewRedis(opts RedisOptions) *Redis {
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Redis{
		client:  client,
		breaker: breaker,
		prefix:  opts.Prefix,
	}
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.client.Close() //nolint: wrapcheck
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	res, err := r.breaker.Execute(func() (interface{}, error) {
		b, err := r.client.Get(ctx, r.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			// a miss is a healthy response
			return nil, nil
		}

		return b, err //nolint: wrapcheck
	})
	if err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()

		return false, fmt.Errorf("could not get %q from redis: %w", key, err)
	}

	b, _ := res.([]byte)
	if b == nil {
		metrics.CacheRequests.WithLabelValues("miss").Inc()

		return false, nil
	}

	if err := json.Unmarshal(b, dst); err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()

		return false, fmt.Errorf("could not decode cached %q: %w", key, err)
	}
	metrics.CacheRequests.WithLabelValues("hit").Inc()

	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode %q for cache: %w", key, err)
	}

	if _, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Set(ctx, r.prefix+key, b, ttl).Err() //nolint: wrapcheck
	}); err != nil {
		return fmt.Errorf("could not set %q in redis: %w", key, err)
	}

	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, r.prefix+k)
	}

	if _, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Del(ctx, prefixed...).Err() //nolint: wrapcheck
	}); err != nil {
		return fmt.Errorf("could not delete keys from redis: %w", err)
	}

	return nil
}
