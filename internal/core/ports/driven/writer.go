package driven

import (
	"context"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// RecordWriter encodes a record sequence to an output document.
type RecordWriter interface {
	// Write serialises records to path, overwriting any existing file.
	// The write is atomic: either the complete document appears at path
	// or the previous content is left untouched. Failures wrap
	// domain.ErrOutputWrite.
	Write(ctx context.Context, path string, records []domain.Record) error
}
