package driven

import (
	"context"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// Enricher stamps batch metadata onto records before validation.
// Optional - when nil, records pass through the pipeline unchanged.
type Enricher interface {
	// Enrich mutates the record's fields in place. Structurally invalid
	// records are left untouched.
	Enrich(ctx context.Context, batchID string, rec *domain.Record) error
}
