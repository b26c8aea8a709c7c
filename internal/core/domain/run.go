package domain

import "time"

// RunStatus is the terminal state of a recorded run.
type RunStatus string

const (
	// RunCompleted indicates both outputs were written.
	RunCompleted RunStatus = "completed"

	// RunFailed indicates the run ended with an error after records
	// were read.
	RunFailed RunStatus = "failed"
)

// Run is one ledger entry: a completed or failed pipeline run.
type Run struct {
	// BatchID uniquely identifies the run.
	BatchID string

	// InputPath is the processed input document.
	InputPath string

	// OKPath and RejectPath are the output documents.
	OKPath     string
	RejectPath string

	// Total, Accepted and Rejected are the record counts.
	Total    int
	Accepted int
	Rejected int

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Status is the terminal state.
	Status RunStatus
}
