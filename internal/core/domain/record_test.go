package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_IsObject(t *testing.T) {
	t.Run("returns true for decoded objects", func(t *testing.T) {
		rec := Record{Fields: map[string]any{"uid": "u1"}}
		assert.True(t, rec.IsObject())
	})

	t.Run("returns false for structurally invalid elements", func(t *testing.T) {
		rec := Record{Raw: json.RawMessage(`42`)}
		assert.False(t, rec.IsObject())
	})
}

func TestRecord_Get(t *testing.T) {
	t.Run("returns present field", func(t *testing.T) {
		rec := Record{Fields: map[string]any{"name": "Ann"}}

		v, ok := rec.Get("name")

		assert.True(t, ok)
		assert.Equal(t, "Ann", v)
	})

	t.Run("reports absent field", func(t *testing.T) {
		rec := Record{Fields: map[string]any{}}

		_, ok := rec.Get("name")

		assert.False(t, ok)
	})

	t.Run("present null field is returned as nil", func(t *testing.T) {
		rec := Record{Fields: map[string]any{"email": nil}}

		v, ok := rec.Get("email")

		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("always absent on non-object records", func(t *testing.T) {
		rec := Record{Raw: json.RawMessage(`"text"`)}

		_, ok := rec.Get("name")

		assert.False(t, ok)
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "OK", Accepted.String())
	assert.Equal(t, "REJECT", Rejected.String())
}

func TestViolation_String(t *testing.T) {
	t.Run("includes field when set", func(t *testing.T) {
		v := Violation{Rule: "required", Field: "uid", Message: "missing required field"}
		assert.Equal(t, "required: uid: missing required field", v.String())
	})

	t.Run("omits field for record-level rules", func(t *testing.T) {
		v := Violation{Rule: "structure", Message: "element is not a JSON object"}
		assert.Equal(t, "structure: element is not a JSON object", v.String())
	})
}
