package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisLease(t *testing.T) {
	repo := NewSessionLeaseRepository(newClient(t))
	ctx := context.Background()
	id := uuid.NewString()

	ok, err := repo.Claim(ctx, id, "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Claim(ctx, id, "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Release(ctx, id, "b"))
	ok, _ = repo.Claim(ctx, id, "b", time.Minute)
	assert.False(t, ok)

	require.NoError(t, repo.Release(ctx, id, "a"))
	ok, _ = repo.Claim(ctx, id, "b", time.Minute)
	assert.True(t, ok)

	require.NoError(t, repo.Release(ctx, id, "b"))
}
