// Package enrich stamps ETL batch metadata onto records, mirroring the
// metadata columns the legacy profile loader added to every row.
package enrich

import (
	"context"
	"time"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// TimestampLayout matches the legacy loader's timestamp formatting
// (year-day-month, microsecond precision).
const TimestampLayout = "2006-02-01 15:04:05.000000 -0700"

// Ensure Enricher implements the interface.
var _ driven.Enricher = (*Enricher)(nil)

// Enricher adds the batch metadata columns to each record:
// modified_timestamp, batch_id and a static tags map.
type Enricher struct {
	// Tags is copied onto each record under the "tags" key.
	// Nil disables the tags column.
	Tags map[string]any

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// New creates an enricher with the given static tags.
func New(tags map[string]any) *Enricher {
	return &Enricher{
		Tags: tags,
		now:  time.Now,
	}
}

// DefaultTags are the processing tags the legacy loader attached.
func DefaultTags() map[string]any {
	return map[string]any{
		"security_level":    "high",
		"allow_user_groups": []any{"admin"},
	}
}

// Enrich sets the metadata fields on the record in place.
// Structurally invalid records are left untouched.
func (e *Enricher) Enrich(_ context.Context, batchID string, rec *domain.Record) error {
	if rec == nil {
		return domain.ErrInvalidInput
	}
	if !rec.IsObject() {
		return nil
	}

	rec.Fields["modified_timestamp"] = e.now().UTC().Format(TimestampLayout)
	rec.Fields["batch_id"] = batchID
	if e.Tags != nil {
		rec.Fields["tags"] = copyTags(e.Tags)
	}
	return nil
}

// copyTags shallow-copies the tags so records do not share the map.
func copyTags(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
