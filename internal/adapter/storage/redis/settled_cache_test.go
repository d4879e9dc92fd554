package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettledCache_MarkAndCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewSettledCache(client)
	ctx := context.Background()

	reference := "dep_a1b2c3d4e5f60718"

	// Unknown reference => not settled
	settled, err := cache.IsSettled(ctx, reference)
	assert.NoError(t, err)
	assert.False(t, settled)

	// Mark
	err = cache.MarkSettled(ctx, reference, 24*time.Hour)
	require.NoError(t, err)

	// Known after mark
	settled, err = cache.IsSettled(ctx, reference)
	require.NoError(t, err)
	assert.True(t, settled)
}

func TestSettledCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewSettledCache(client)
	ctx := context.Background()

	reference := "dep_ffeeddccbbaa9988"

	err := cache.MarkSettled(ctx, reference, 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	settled, err := cache.IsSettled(ctx, reference)
	assert.NoError(t, err)
	assert.False(t, settled, "expired reference should fall back to a miss")
}

func TestSettledCache_ReferencesAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewSettledCache(client)
	ctx := context.Background()

	err := cache.MarkSettled(ctx, "dep_1111111111111111", 1*time.Hour)
	require.NoError(t, err)

	settled, err := cache.IsSettled(ctx, "dep_2222222222222222")
	require.NoError(t, err)
	assert.False(t, settled)
}
