package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// Kind is a primitive JSON type a field can be constrained to.
type Kind string

const (
	// String constrains a field to JSON strings.
	String Kind = "string"
	// Number constrains a field to JSON numbers.
	Number Kind = "number"
	// Boolean constrains a field to JSON booleans.
	Boolean Kind = "boolean"
)

// emailPattern is a deliberately loose address shape check:
// something@something.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// fieldRule is the common shape of all per-field rules.
type fieldRule struct {
	name  string
	field string
	check func(rec domain.Record) *domain.Violation
}

func (r *fieldRule) Name() string  { return r.name }
func (r *fieldRule) Field() string { return r.field }

func (r *fieldRule) Check(rec domain.Record) *domain.Violation {
	return r.check(rec)
}

// violation builds a violation for a rule.
func (r *fieldRule) violation(message string) *domain.Violation {
	return &domain.Violation{Rule: r.name, Field: r.field, Message: message}
}

// Required checks that the field is present on the record.
func Required(field string) driven.Rule {
	r := &fieldRule{name: "required", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		if _, ok := rec.Get(field); !ok {
			return r.violation("missing required field")
		}
		return nil
	}
	return r
}

// NotNull checks that a present field is not JSON null.
// Presence is not implied; combine with Required for that.
func NotNull(field string) driven.Rule {
	r := &fieldRule{name: "not_null", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		if v, ok := rec.Get(field); ok && v == nil {
			return r.violation("must not be null")
		}
		return nil
	}
	return r
}

// NonEmpty checks that a present field is a string with non-blank
// content.
func NonEmpty(field string) driven.Rule {
	r := &fieldRule{name: "non_empty", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		v, ok := rec.Get(field)
		if !ok {
			return nil
		}
		s, isString := v.(string)
		if !isString || strings.TrimSpace(s) == "" {
			return r.violation("must be a non-empty string")
		}
		return nil
	}
	return r
}

// Type checks that a present, non-null field has the given primitive
// type.
func Type(field string, kind Kind) driven.Rule {
	r := &fieldRule{name: string(kind), field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			return nil
		}
		if !isKind(v, kind) {
			return r.violation(fmt.Sprintf("must be a %s", kind))
		}
		return nil
	}
	return r
}

// Email checks that a present, non-null field looks like an email
// address (local@domain with a dot in the domain).
func Email(field string) driven.Rule {
	r := &fieldRule{name: "email", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			return nil
		}
		s, isString := v.(string)
		if !isString || !emailPattern.MatchString(s) {
			return r.violation("must be a valid email address")
		}
		return nil
	}
	return r
}

// Date checks that a present, non-null field parses with one of the
// given layouts. Defaults to ISO dates (2006-01-02) when no layout is
// given.
func Date(field string, layouts ...string) driven.Rule {
	if len(layouts) == 0 {
		layouts = []string{"2006-01-02"}
	}
	r := &fieldRule{name: "date", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			return nil
		}
		s, isString := v.(string)
		if isString {
			for _, layout := range layouts {
				if _, err := time.Parse(layout, s); err == nil {
					return nil
				}
			}
		}
		return r.violation(fmt.Sprintf("must be a date matching %s", strings.Join(layouts, " or ")))
	}
	return r
}

// Range checks that a present, non-null field is a number within
// [min, max].
func Range(field string, min, max float64) driven.Rule {
	r := &fieldRule{name: "range", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			return nil
		}
		n, isNumber := asNumber(v)
		if !isNumber {
			return r.violation("must be a number")
		}
		if n < min || n > max {
			return r.violation(fmt.Sprintf("must be between %v and %v", min, max))
		}
		return nil
	}
	return r
}

// OneOf checks that a present, non-null field is one of the allowed
// string values.
func OneOf(field string, values ...string) driven.Rule {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	r := &fieldRule{name: "one_of", field: field}
	r.check = func(rec domain.Record) *domain.Violation {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			return nil
		}
		s, isString := v.(string)
		if isString {
			if _, found := allowed[s]; found {
				return nil
			}
		}
		return r.violation(fmt.Sprintf("must be one of %s", strings.Join(values, ", ")))
	}
	return r
}

// isKind reports whether a decoded JSON value has the primitive kind.
// Numbers arrive as json.Number when the reader decodes with UseNumber,
// or float64 from plain unmarshalling.
func isKind(v any, kind Kind) bool {
	switch kind {
	case String:
		_, ok := v.(string)
		return ok
	case Number:
		_, ok := asNumber(v)
		return ok
	case Boolean:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// asNumber converts a decoded JSON value to float64 if it is numeric.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
