package domain

import "time"

// RecordResult is the validation verdict for one record.
type RecordResult struct {
	Record     Record
	Outcome    Outcome
	Violations []Violation
}

// Report is the outcome of a pipeline run: the per-record results plus
// the run totals. Results preserve input order.
type Report struct {
	// BatchID uniquely identifies the run.
	BatchID string

	// InputPath is the processed input document.
	InputPath string

	// OKPath and RejectPath are the output documents.
	OKPath     string
	RejectPath string

	// Total, Accepted and Rejected are the record counts.
	// Total = Accepted + Rejected always holds.
	Total    int
	Accepted int
	Rejected int

	// Results holds the per-record verdicts in input order.
	Results []RecordResult

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time
}
