package driven

import "github.com/Drewrwhite/profile-data/internal/core/domain"

// Rule is a single named validation check on one record.
type Rule interface {
	// Name returns the rule kind identifier (e.g. "required", "email").
	Name() string

	// Field returns the record field the rule applies to.
	// Empty for record-level rules.
	Field() string

	// Check evaluates the rule. Returns nil when the rule passes.
	Check(rec domain.Record) *domain.Violation
}

// RuleSet evaluates a fixed rule table against records.
// Validation is all-or-nothing: a record is accepted only when
// Evaluate returns no violations.
type RuleSet interface {
	// Evaluate runs every rule against the record and returns all
	// violations. Structurally invalid records yield a single
	// record-level violation.
	Evaluate(rec domain.Record) []domain.Violation

	// Rules returns the rules in the set, for reporting.
	Rules() []Rule
}
