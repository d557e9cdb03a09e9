package lru_test

import (
	"file-processor/internal/adapters/cache/lru"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerFiles(t *testing.T) {
	t.Run("Miss on empty cache", func(t *testing.T) {
		cache := lru.NewOwnerFiles(10, time.Minute)

		ids, ok := cache.Get(uuid.New())

		assert.False(t, ok)
		assert.Nil(t, ids)
	})

	t.Run("Hit returns the snapshot in order", func(t *testing.T) {
		cache := lru.NewOwnerFiles(10, time.Minute)
		owner := uuid.New()
		want := []uuid.UUID{uuid.New(), uuid.New()}

		cache.Set(owner, want)
		ids, ok := cache.Get(owner)

		require.True(t, ok)
		assert.Equal(t, want, ids)
	})

	t.Run("Snapshot is not affected by later changes to the caller slice", func(t *testing.T) {
		cache := lru.NewOwnerFiles(10, time.Minute)
		owner := uuid.New()
		first := uuid.New()
		ids := []uuid.UUID{first}

		cache.Set(owner, ids)
		ids[0] = uuid.New()
		got, _ := cache.Get(owner)
		got[0] = uuid.New()
		again, _ := cache.Get(owner)

		assert.Equal(t, []uuid.UUID{first}, again)
	})

	t.Run("Entry expires after ttl", func(t *testing.T) {
		cache := lru.NewOwnerFiles(10, 30*time.Millisecond)
		owner := uuid.New()
		cache.Set(owner, []uuid.UUID{uuid.New()})

		require.Eventually(t, func() bool {
			_, ok := cache.Get(owner)
			return !ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Least recently used owner is evicted", func(t *testing.T) {
		cache := lru.NewOwnerFiles(1, time.Minute)
		a, b := uuid.New(), uuid.New()

		cache.Set(a, []uuid.UUID{uuid.New()})
		cache.Set(b, []uuid.UUID{uuid.New()})

		_, okA := cache.Get(a)
		_, okB := cache.Get(b)
		assert.False(t, okA)
		assert.True(t, okB)
	})
}
