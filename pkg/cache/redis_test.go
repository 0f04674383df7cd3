package cache_test

import (
	"context"
	"fmt"
	"marketplace/pkg/cache"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%d", host, port.Int())
}

func TestRedis_GetSetDelete(t *testing.T) {
	r := cache.NewRedis(cache.RedisOptions{
		Addr:           startRedis(t),
		Prefix:         "test:",
		BreakerTimeout: time.Second,
	})
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()
	require.NoError(t, r.Ping(ctx))

	var got entry
	found, err := r.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, r.Set(ctx, "k", entry{Name: "a", Count: 2}, time.Minute))
	found, err = r.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, entry{Name: "a", Count: 2}, got)

	require.NoError(t, r.Delete(ctx, "k", "missing"))
	found, err = r.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedis_Expires(t *testing.T) {
	r := cache.NewRedis(cache.RedisOptions{Addr: startRedis(t)})
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", entry{Name: "a"}, 100*time.Millisecond))
	require.Eventually(t, func() bool {
		found, err := r.Get(ctx, "k", &entry{})

		return err == nil && !found
	}, 5*time.Second, 50*time.Millisecond)
}

func TestRedis_BreakerOpensOnFailures(t *testing.T) {
	r := cache.NewRedis(cache.RedisOptions{
		Addr:            "127.0.0.1:1",
		BreakerTimeout:  time.Minute,
		BreakerFailures: 2,
	})
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := r.Get(ctx, "k", &entry{})
		require.Error(t, err)
	}

	_, err := r.Get(ctx, "k", &entry{})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestNoop(t *testing.T) {
	var c cache.Cache = cache.Noop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	found, err := c.Get(ctx, "k", new(int))
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, c.Delete(ctx, "k"))
}
