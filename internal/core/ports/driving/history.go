package driving

import (
	"context"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// History exposes the run ledger.
type History interface {
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get retrieves a run by batch ID.
	// Returns domain.ErrNotFound if no such run exists.
	Get(ctx context.Context, batchID string) (*domain.Run, error)
}
