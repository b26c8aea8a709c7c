package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

func TestHistory(t *testing.T) {
	ctx := context.Background()

	seed := func() *fakeRunStore {
		return &fakeRunStore{saved: []domain.Run{
			{
				BatchID:   "batch-1",
				InputPath: "profiles.json",
				Total:     10,
				Accepted:  8,
				Rejected:  2,
				StartedAt: time.Date(2023, 4, 17, 9, 0, 0, 0, time.UTC),
				Status:    domain.RunCompleted,
			},
			{
				BatchID: "batch-2",
				Status:  domain.RunFailed,
			},
		}}
	}

	t.Run("lists runs from the ledger", func(t *testing.T) {
		h := NewHistory(seed())

		runs, err := h.List(ctx, 10)

		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("gets a run by batch id", func(t *testing.T) {
		h := NewHistory(seed())

		run, err := h.Get(ctx, "batch-1")

		require.NoError(t, err)
		assert.Equal(t, 8, run.Accepted)
	})

	t.Run("unknown batch id is not found", func(t *testing.T) {
		h := NewHistory(seed())

		_, err := h.Get(ctx, "batch-404")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
