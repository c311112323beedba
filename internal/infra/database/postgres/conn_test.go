package postgres_test

import (
	"context"
	"testing"

	"github.com/arnizwnd/redis-tugas/internal/domain/metadata"
	"github.com/arnizwnd/redis-tugas/internal/infra/database/postgres"
	"github.com/arnizwnd/redis-tugas/internal/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewPool(t *testing.T) {
	// Skip if no database available
	t.Skip("Integration test - requires PostgreSQL")

	ctx := context.Background()

	cfg, err := config.Load()
	assert.NoError(t, err)

	pool, err := postgres.NewPool(ctx, cfg)
	assert.NoError(t, err)
	assert.NotNil(t, pool)

	defer pool.Close()

	err = pool.Ping(ctx)
	assert.NoError(t, err)
}

func TestPool_Health(t *testing.T) {
	t.Skip("Integration test - requires PostgreSQL")

	ctx := context.Background()

	cfg, err := config.Load()
	assert.NoError(t, err)

	pool, err := postgres.NewPool(ctx, cfg)
	assert.NoError(t, err)
	defer pool.Close()

	health := pool.Health(ctx)
	assert.NotNil(t, health)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxConns, int32(0))
}

func TestMetadataRepository_Integration(t *testing.T) {
	t.Skip("Integration test - requires PostgreSQL with api_metadata")

	ctx := context.Background()

	cfg, err := config.Load()
	assert.NoError(t, err)

	pool, err := postgres.NewPool(ctx, cfg)
	assert.NoError(t, err)
	defer pool.Close()

	repo := postgres.NewMetadataRepository(pool)
	companies, err := repo.List(ctx, metadata.Filter{Sectors: []string{"Banks", "Insurance"}})
	assert.NoError(t, err)
	for _, c := range companies {
		assert.Contains(t, []string{"Banks", "Insurance"}, c.Sector)
	}
}
