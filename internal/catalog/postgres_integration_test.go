package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/spherical/saleseer/internal/observability"
)

func TestPostgresRoundTrip_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("saleseer_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/saleseer_test?sslmode=disable", host, port.Port())

	db, err := OpenDB(ctx, DriverPostgres, dsn)
	require.NoError(t, err)
	require.NoError(t, WriteSQL(ctx, db, DriverPostgres, "products", sampleProducts(), nil))
	require.NoError(t, db.Close())

	cat, err := Load(ctx, dsn, "products", observability.Nop())
	require.NoError(t, err)
	assert.Equal(t, sampleProducts(), cat.Products())
	assert.NotContains(t, cat.Source(), "test:test")
}
