package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7.4-alpine")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, RedisConfig{Addr: host + ":" + port.Port(), Prefix: "test:"})
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Get(ctx, "criteria:x")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, client.Set(ctx, "criteria:x", []byte(`{"color":"red"}`), time.Minute))
	got, err := client.Get(ctx, "criteria:x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"red"}`, string(got))

	require.NoError(t, client.Delete(ctx, "criteria:x"))
	_, err = client.Get(ctx, "criteria:x")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
