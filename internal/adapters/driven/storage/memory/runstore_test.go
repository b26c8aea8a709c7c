package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

func TestRunStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2023, 4, 17, 9, 0, 0, 0, time.UTC)

	t.Run("save and get round-trip", func(t *testing.T) {
		store := NewRunStore()
		run := domain.Run{BatchID: "batch-1", Total: 3, StartedAt: base}

		require.NoError(t, store.Save(ctx, run))

		got, err := store.Get(ctx, "batch-1")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Total)
	})

	t.Run("unknown batch id is not found", func(t *testing.T) {
		store := NewRunStore()

		_, err := store.Get(ctx, "batch-404")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list returns newest first with limit", func(t *testing.T) {
		store := NewRunStore()
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Save(ctx, domain.Run{
				BatchID:   string(rune('a' + i)),
				StartedAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		runs, err := store.List(ctx, 2)

		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, "c", runs[0].BatchID)
		assert.Equal(t, "b", runs[1].BatchID)
	})
}
