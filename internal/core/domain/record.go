package domain

import "encoding/json"

// Record is one element of the input document.
//
// A structurally valid element decodes into Fields. A structurally
// invalid element (a non-object array entry, or an unparseable JSON
// line re-encoded as a string) keeps only its Raw form and is rejected
// as a whole rather than failing the run.
type Record struct {
	// Index is the zero-based position in the input.
	Index int

	// Fields holds the decoded object. Nil for non-object elements.
	Fields map[string]any

	// Raw is the original encoding of a non-object element.
	Raw json.RawMessage
}

// IsObject reports whether the record decoded into a JSON object.
func (r Record) IsObject() bool {
	return r.Fields != nil
}

// Get returns the named field and whether it is present. A field set
// to JSON null is present with a nil value. Non-object records have no
// fields.
func (r Record) Get(field string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[field]
	return v, ok
}

// Outcome is the validation verdict for a single record.
type Outcome int

const (
	// Accepted means the record passed every rule.
	Accepted Outcome = iota

	// Rejected means at least one rule failed, or the element was not
	// a JSON object.
	Rejected
)

// String returns the outcome label used in output and logs.
func (o Outcome) String() string {
	if o == Accepted {
		return "OK"
	}
	return "REJECT"
}

// Violation is one failed rule check on a record.
type Violation struct {
	// Rule is the name of the failed rule.
	Rule string

	// Field is the checked field. Empty for record-level rules.
	Field string

	// Message describes the failure.
	Message string
}

// String renders the violation as "rule: field: message", omitting the
// field for record-level rules.
func (v Violation) String() string {
	if v.Field == "" {
		return v.Rule + ": " + v.Message
	}
	return v.Rule + ": " + v.Field + ": " + v.Message
}
