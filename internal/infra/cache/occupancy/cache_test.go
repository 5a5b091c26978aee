package occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCache(client, 5*time.Minute), mr
}

func TestCache_GetSet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("miss returns nil without error", func(t *testing.T) {
		counts, err := cache.Get(ctx, month)
		require.NoError(t, err)
		assert.Nil(t, counts)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		stored := map[string]int{"2026-09-16": 3, "2026-09-17": 1}
		require.NoError(t, cache.Set(ctx, month, stored))

		counts, err := cache.Get(ctx, month)
		require.NoError(t, err)
		assert.Equal(t, stored, counts)
	})

	t.Run("months use separate keys", func(t *testing.T) {
		other := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		counts, err := cache.Get(ctx, other)
		require.NoError(t, err)
		assert.Nil(t, counts)
	})
}

func TestCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, month, map[string]int{"2026-09-16": 1}))

	// After the TTL expires the entry turns into a miss
	mr.FastForward(6 * time.Minute)

	counts, err := cache.Get(ctx, month)
	require.NoError(t, err)
	assert.Nil(t, counts)
}

func TestCache_InvalidateDate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, month, map[string]int{"2026-09-16": 1}))

	// Any date within the month drops the whole month key
	bookingDate := time.Date(2026, 9, 23, 0, 0, 0, 0, time.UTC)
	require.NoError(t, cache.InvalidateDate(ctx, bookingDate))

	counts, err := cache.Get(ctx, month)
	require.NoError(t, err)
	assert.Nil(t, counts)
}
