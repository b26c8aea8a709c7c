package driven

import (
	"context"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// RunStore persists the run ledger.
// Optional - when nil, runs are not recorded and history is disabled.
type RunStore interface {
	// Save stores or updates a run by batch ID.
	Save(ctx context.Context, run domain.Run) error

	// Get retrieves a run by batch ID.
	// Returns domain.ErrNotFound if no such run exists.
	Get(ctx context.Context, batchID string) (*domain.Run, error)

	// List returns the most recent runs, newest first.
	// A limit <= 0 returns all runs.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Close releases resources.
	Close() error
}
