package driven

import (
	"context"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// RecordReader decodes an input document into an ordered record sequence.
type RecordReader interface {
	// Read loads and decodes the document at path.
	// Records are returned in input order with Index set.
	// Structurally invalid elements are returned as records with nil
	// Fields rather than failing the read; only a missing file or a
	// document-level decode failure returns an error, wrapping
	// domain.ErrMalformedInput.
	Read(ctx context.Context, path string) ([]domain.Record, error)
}
