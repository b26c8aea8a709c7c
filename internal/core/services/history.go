package services

import (
	"context"
	"fmt"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driving"
)

// Ensure History implements the interface.
var _ driving.History = (*History)(nil)

// History exposes the run ledger.
type History struct {
	runs driven.RunStore
}

// NewHistory creates the history service.
func NewHistory(runs driven.RunStore) *History {
	return &History{runs: runs}
}

// List returns the most recent runs, newest first.
func (h *History) List(ctx context.Context, limit int) ([]domain.Run, error) {
	runs, err := h.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get retrieves a run by batch ID.
func (h *History) Get(ctx context.Context, batchID string) (*domain.Run, error) {
	run, err := h.runs.Get(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", batchID, err)
	}
	return run, nil
}
