package rules

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// validProfile builds a record that satisfies the default rule set.
func validProfile() domain.Record {
	return rec(map[string]any{
		"uid":          "u-001",
		"name":         "Ann",
		"gender":       "female",
		"email":        "ann@example.com",
		"birthdate":    "1990-04-17",
		"salary":       json.Number("52000"),
		"credit_score": json.Number("710"),
		"active":       true,
	})
}

func TestSet_Evaluate(t *testing.T) {
	t.Run("implements RuleSet", func(t *testing.T) {
		var _ driven.RuleSet = NewSet()
	})

	t.Run("valid profile has no violations", func(t *testing.T) {
		set := Default()

		violations := set.Evaluate(validProfile())

		assert.Empty(t, violations)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		set := Default()
		profile := validProfile()
		delete(profile.Fields, "uid")
		profile.Fields["email"] = "not-an-address"

		violations := set.Evaluate(profile)

		// required:uid, non_empty is skipped for absent uid, email:email
		require.Len(t, violations, 2)
		assert.Equal(t, "required", violations[0].Rule)
		assert.Equal(t, "uid", violations[0].Field)
		assert.Equal(t, "email", violations[1].Rule)
	})

	t.Run("null field trips not_null but not required", func(t *testing.T) {
		set := Default()
		profile := validProfile()
		profile.Fields["gender"] = nil

		violations := set.Evaluate(profile)

		require.Len(t, violations, 1)
		assert.Equal(t, "not_null", violations[0].Rule)
		assert.Equal(t, "gender", violations[0].Field)
	})

	t.Run("structurally invalid record yields single structure violation", func(t *testing.T) {
		set := Default()
		notObject := domain.Record{Raw: json.RawMessage(`[1,2,3]`)}

		violations := set.Evaluate(notObject)

		require.Len(t, violations, 1)
		assert.Equal(t, "structure", violations[0].Rule)
		assert.Empty(t, violations[0].Field)
	})

	t.Run("empty set accepts any object", func(t *testing.T) {
		set := NewSet()

		assert.Empty(t, set.Evaluate(rec(map[string]any{})))
	})
}

func TestFromTable(t *testing.T) {
	t.Run("builds rules for every table entry", func(t *testing.T) {
		table := Table{
			Required: []string{"uid"},
			NotNull:  []string{"uid"},
			NonEmpty: []string{"name"},
			Boolean:  []string{"active"},
			Email:    []string{"email"},
			Date:     map[string]string{"birthdate": "2006-01-02"},
			Range:    map[string]Bounds{"credit_score": {Min: 300, Max: 850}},
			OneOf:    map[string][]string{"gender": {"female", "male", "other"}},
		}

		set := FromTable(table)

		assert.Len(t, set.Rules(), 8)
	})

	t.Run("rule order is deterministic across builds", func(t *testing.T) {
		table := Table{
			Range: map[string]Bounds{
				"salary":       {Min: 0, Max: 100},
				"credit_score": {Min: 300, Max: 850},
				"age":          {Min: 0, Max: 130},
			},
		}

		first := FromTable(table)
		second := FromTable(table)

		require.Equal(t, len(first.Rules()), len(second.Rules()))
		for i := range first.Rules() {
			assert.Equal(t, first.Rules()[i].Field(), second.Rules()[i].Field())
		}
		// Map-backed rules come out sorted by field.
		assert.Equal(t, "age", first.Rules()[0].Field())
		assert.Equal(t, "credit_score", first.Rules()[1].Field())
		assert.Equal(t, "salary", first.Rules()[2].Field())
	})

	t.Run("empty table builds empty set", func(t *testing.T) {
		assert.Empty(t, FromTable(Table{}).Rules())
	})
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	// The profile schema the legacy loader enforced.
	assert.ElementsMatch(t, []string{
		"uid", "name", "gender", "email", "birthdate",
		"salary", "credit_score", "active",
	}, table.Required)
	assert.Equal(t, table.Required, table.NotNull)
	assert.Contains(t, table.Email, "email")
	assert.Contains(t, table.Date, "birthdate")
	assert.Contains(t, table.Range, "credit_score")
}
