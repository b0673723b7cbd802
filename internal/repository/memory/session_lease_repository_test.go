package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseIsExclusive(t *testing.T) {
	repo := NewSessionLeaseRepository()
	ctx := context.Background()

	ok, err := repo.Claim(ctx, "s1", "relay-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = repo.Claim(ctx, "s1", "relay-b", time.Minute)
	assert.False(t, ok)

	ok, _ = repo.Claim(ctx, "s1", "relay-a", time.Minute)
	assert.True(t, ok, "owner may re-claim")
}

func TestReleaseOnlyByOwner(t *testing.T) {
	repo := NewSessionLeaseRepository()
	ctx := context.Background()

	_, _ = repo.Claim(ctx, "s1", "relay-a", time.Minute)
	require.NoError(t, repo.Release(ctx, "s1", "relay-b"))

	ok, _ := repo.Claim(ctx, "s1", "relay-b", time.Minute)
	assert.False(t, ok)

	require.NoError(t, repo.Release(ctx, "s1", "relay-a"))
	ok, _ = repo.Claim(ctx, "s1", "relay-b", time.Minute)
	assert.True(t, ok)
}

func TestLeaseExpires(t *testing.T) {
	repo := NewSessionLeaseRepository()
	ctx := context.Background()

	_, _ = repo.Claim(ctx, "s1", "relay-a", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	ok, _ := repo.Claim(ctx, "s1", "relay-b", time.Minute)
	assert.True(t, ok)
}
