package rules

import (
	"sort"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// Ensure Set implements the interface.
var _ driven.RuleSet = (*Set)(nil)

// Set is an ordered collection of rules evaluated against each record.
type Set struct {
	rules []driven.Rule
}

// NewSet creates a rule set from the given rules, evaluated in order.
func NewSet(ruleList ...driven.Rule) *Set {
	return &Set{rules: ruleList}
}

// Evaluate runs every rule against the record and collects violations.
// Structurally invalid records (not a JSON object) yield a single
// record-level violation; no field rules are evaluated for them.
func (s *Set) Evaluate(rec domain.Record) []domain.Violation {
	if !rec.IsObject() {
		return []domain.Violation{{
			Rule:    "structure",
			Message: "element is not a JSON object",
		}}
	}

	var violations []domain.Violation
	for _, rule := range s.rules {
		if v := rule.Check(rec); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// Rules returns the rules in evaluation order.
func (s *Set) Rules() []driven.Rule {
	return s.rules
}

// Bounds is an inclusive numeric range for the range rule.
type Bounds struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Table is the declarative rule table. It maps directly onto the
// [rules] section of the config file.
type Table struct {
	// Required lists fields that must be present.
	Required []string `toml:"required"`

	// NotNull lists fields that must not be JSON null when present.
	NotNull []string `toml:"not_null"`

	// NonEmpty lists string fields that must have non-blank content.
	NonEmpty []string `toml:"non_empty"`

	// String, Number and Boolean list fields constrained to a
	// primitive type.
	String  []string `toml:"string"`
	Number  []string `toml:"number"`
	Boolean []string `toml:"boolean"`

	// Email lists fields that must look like an address.
	Email []string `toml:"email"`

	// Date maps fields to the layout their value must parse with
	// (Go reference layout, e.g. "2006-01-02").
	Date map[string]string `toml:"date"`

	// Range maps numeric fields to their inclusive bounds.
	Range map[string]Bounds `toml:"range"`

	// OneOf maps fields to their allowed string values.
	OneOf map[string][]string `toml:"one_of"`
}

// FromTable builds a rule set from a declarative table.
// Rule order is deterministic: list rules in declaration order, map
// rules sorted by field name.
func FromTable(t Table) *Set {
	var ruleList []driven.Rule

	for _, f := range t.Required {
		ruleList = append(ruleList, Required(f))
	}
	for _, f := range t.NotNull {
		ruleList = append(ruleList, NotNull(f))
	}
	for _, f := range t.NonEmpty {
		ruleList = append(ruleList, NonEmpty(f))
	}
	for _, f := range t.String {
		ruleList = append(ruleList, Type(f, String))
	}
	for _, f := range t.Number {
		ruleList = append(ruleList, Type(f, Number))
	}
	for _, f := range t.Boolean {
		ruleList = append(ruleList, Type(f, Boolean))
	}
	for _, f := range t.Email {
		ruleList = append(ruleList, Email(f))
	}
	for _, f := range sortedKeys(t.Date) {
		ruleList = append(ruleList, Date(f, t.Date[f]))
	}
	for _, f := range sortedKeys(t.Range) {
		b := t.Range[f]
		ruleList = append(ruleList, Range(f, b.Min, b.Max))
	}
	for _, f := range sortedKeys(t.OneOf) {
		ruleList = append(ruleList, OneOf(f, t.OneOf[f]...))
	}

	return NewSet(ruleList...)
}

// DefaultTable is the profile schema the legacy loader enforced:
// all profile fields present and non-null, with shape checks layered
// on top of the fields whose format is unambiguous.
func DefaultTable() Table {
	profileFields := []string{
		"uid", "name", "gender", "email", "birthdate",
		"salary", "credit_score", "active",
	}

	return Table{
		Required: profileFields,
		NotNull:  profileFields,
		NonEmpty: []string{"uid", "name"},
		Boolean:  []string{"active"},
		Email:    []string{"email"},
		Date:     map[string]string{"birthdate": "2006-01-02"},
		Range: map[string]Bounds{
			"salary":       {Min: 0, Max: 10_000_000},
			"credit_score": {Min: 300, Max: 850},
		},
	}
}

// Default builds the default profile rule set.
func Default() *Set {
	return FromTable(DefaultTable())
}

// sortedKeys returns map keys in sorted order for deterministic
// rule ordering.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
