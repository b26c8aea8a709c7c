package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driving"
	"github.com/Drewrwhite/profile-data/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// Pipeline validates profile records and splits them into the OK and
// reject outputs.
type Pipeline struct {
	reader   driven.RecordReader
	writer   driven.RecordWriter
	rules    driven.RuleSet
	enricher driven.Enricher
	runs     driven.RunStore
}

// NewPipeline creates the record validator & splitter.
// The enricher and run store are optional - if nil, enrichment is
// unavailable and runs are not recorded.
func NewPipeline(
	reader driven.RecordReader,
	writer driven.RecordWriter,
	ruleSet driven.RuleSet,
	enricher driven.Enricher,
	runs driven.RunStore,
) *Pipeline {
	return &Pipeline{
		reader:   reader,
		writer:   writer,
		rules:    ruleSet,
		enricher: enricher,
		runs:     runs,
	}
}

// Run executes the full ETL run: read, enrich, validate, split, write.
//
// Every input record lands in exactly one output, in input order. A
// read or decode failure aborts before any output is written. Both
// output writes are attempted even if the first fails; write failures
// are reported jointly.
func (p *Pipeline) Run(ctx context.Context, opts driving.RunOptions) (*domain.Report, error) {
	report := &domain.Report{
		BatchID:   uuid.New().String(),
		InputPath: opts.InputPath,
		StartedAt: time.Now().UTC(),
	}
	report.OKPath, report.RejectPath = resolveOutputPaths(opts, report.StartedAt)

	logger.Info("Starting batch %s: %s", report.BatchID, opts.InputPath)

	records, err := p.reader.Read(ctx, opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if opts.Enrich {
		if p.enricher == nil {
			return nil, errors.New("enrichment requested but no enricher configured")
		}
		for i := range records {
			if err := p.enricher.Enrich(ctx, report.BatchID, &records[i]); err != nil {
				return nil, fmt.Errorf("enrich record %d: %w", i, err)
			}
		}
	}

	report.Results = Evaluate(records, p.rules)
	p.tally(report)

	if opts.Annotate {
		annotateRejects(report.Results)
	}

	accepted, rejected := split(report.Results)

	logger.Debug("Partitioned %d records: %d ok, %d rejected",
		report.Total, report.Accepted, report.Rejected)

	// Attempt both writes before reporting failure.
	writeErrs := []error{
		p.writer.Write(ctx, report.OKPath, accepted),
		p.writer.Write(ctx, report.RejectPath, rejected),
	}
	report.FinishedAt = time.Now().UTC()

	if err := errors.Join(writeErrs...); err != nil {
		p.record(ctx, report, domain.RunFailed)
		return report, fmt.Errorf("write outputs: %w", err)
	}

	p.record(ctx, report, domain.RunCompleted)

	logger.Info("Batch %s complete: %d records, %d ok, %d rejected",
		report.BatchID, report.Total, report.Accepted, report.Rejected)
	return report, nil
}

// Check validates the input without writing any output.
func (p *Pipeline) Check(ctx context.Context, inputPath string) (*domain.Report, error) {
	report := &domain.Report{
		BatchID:   uuid.New().String(),
		InputPath: inputPath,
		StartedAt: time.Now().UTC(),
	}

	records, err := p.reader.Read(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	report.Results = Evaluate(records, p.rules)
	p.tally(report)
	report.FinishedAt = time.Now().UTC()

	return report, nil
}

// Evaluate applies the rule set to every record, in input order.
// It is a pure function from (records, rules) to per-record outcomes.
func Evaluate(records []domain.Record, ruleSet driven.RuleSet) []domain.RecordResult {
	results := make([]domain.RecordResult, 0, len(records))
	for _, rec := range records {
		violations := ruleSet.Evaluate(rec)

		outcome := domain.Accepted
		if len(violations) > 0 {
			outcome = domain.Rejected
		}

		results = append(results, domain.RecordResult{
			Record:     rec,
			Outcome:    outcome,
			Violations: violations,
		})
	}
	return results
}

// split partitions results into the accepted and rejected sequences,
// preserving relative input order in both.
func split(results []domain.RecordResult) (accepted, rejected []domain.Record) {
	accepted = make([]domain.Record, 0, len(results))
	rejected = make([]domain.Record, 0)
	for i := range results {
		if results[i].Outcome == domain.Accepted {
			accepted = append(accepted, results[i].Record)
		} else {
			rejected = append(rejected, results[i].Record)
		}
	}
	return accepted, rejected
}

// annotateRejects attaches an "error" field listing the violations to
// each rejected object record, the way the legacy loader tagged its
// reject rows.
func annotateRejects(results []domain.RecordResult) {
	for i := range results {
		r := &results[i]
		if r.Outcome != domain.Rejected || !r.Record.IsObject() {
			continue
		}

		msg := fmt.Sprintf("[%04d][ERR]:", r.Record.Index)
		for _, v := range r.Violations {
			msg += " " + v.String() + ";"
		}
		r.Record.Fields["error"] = msg
	}
}

// tally fills the report counters from its results.
func (p *Pipeline) tally(report *domain.Report) {
	report.Total = len(report.Results)
	report.Accepted = 0
	report.Rejected = 0
	for i := range report.Results {
		if report.Results[i].Outcome == domain.Accepted {
			report.Accepted++
		} else {
			report.Rejected++
		}
	}
}

// record saves the run to the ledger. Best effort - a ledger failure
// never fails the ETL run itself.
func (p *Pipeline) record(ctx context.Context, report *domain.Report, status domain.RunStatus) {
	if p.runs == nil {
		return
	}

	run := domain.Run{
		BatchID:    report.BatchID,
		InputPath:  report.InputPath,
		OKPath:     report.OKPath,
		RejectPath: report.RejectPath,
		Total:      report.Total,
		Accepted:   report.Accepted,
		Rejected:   report.Rejected,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Status:     status,
	}
	if err := p.runs.Save(ctx, run); err != nil {
		logger.Warn("Failed to record run %s: %v", report.BatchID, err)
	}
}

// resolveOutputPaths applies the explicit output paths or derives them
// from the input path.
func resolveOutputPaths(opts driving.RunOptions, started time.Time) (okPath, rejectPath string) {
	stamp := time.Time{}
	if opts.Datestamp {
		stamp = started
	}
	okPath, rejectPath = domain.OutputPaths(opts.InputPath, stamp)

	if opts.OKPath != "" {
		okPath = opts.OKPath
	}
	if opts.RejectPath != "" {
		rejectPath = opts.RejectPath
	}
	return okPath, rejectPath
}
