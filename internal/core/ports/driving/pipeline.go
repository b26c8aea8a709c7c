package driving

import (
	"context"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// RunOptions configures a single pipeline run.
type RunOptions struct {
	// InputPath is the input document to process.
	InputPath string

	// OKPath and RejectPath are the output documents. When empty they
	// are derived from InputPath (<base>_ok.json / <base>_reject.json).
	OKPath     string
	RejectPath string

	// Datestamp inserts a UTC datestamp into derived output names,
	// matching the legacy loader's convention. Ignored when explicit
	// output paths are given.
	Datestamp bool

	// Enrich stamps batch metadata onto each record before validation.
	Enrich bool

	// Annotate attaches an "error" field listing the violations to each
	// rejected record.
	Annotate bool
}

// Pipeline validates profile records and splits them into the OK and
// reject outputs.
type Pipeline interface {
	// Run executes the full ETL run: read, enrich, validate, split,
	// write. The returned report is non-nil whenever records were read,
	// even if writing failed.
	Run(ctx context.Context, opts RunOptions) (*domain.Report, error)

	// Check validates the input without writing any output.
	Check(ctx context.Context, inputPath string) (*domain.Report, error)
}
