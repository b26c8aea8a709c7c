package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

// writeInput drops a test document into a temp dir.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_Read_Array(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes records in input order", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `[{"id":1,"name":"Ann"},{"id":2}]`)

		records, err := NewReader(domain.FormatArray).Read(ctx, path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 0, records[0].Index)
		assert.Equal(t, "Ann", records[0].Fields["name"])
		assert.Equal(t, 1, records[1].Index)
	})

	t.Run("preserves numeric fidelity via json.Number", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `[{"salary":52000,"ratio":0.25}]`)

		records, err := NewReader(domain.FormatArray).Read(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, json.Number("52000"), records[0].Fields["salary"])
		assert.Equal(t, json.Number("0.25"), records[0].Fields["ratio"])
	})

	t.Run("empty array yields zero records", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `[]`)

		records, err := NewReader(domain.FormatArray).Read(ctx, path)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("non-object elements become structurally invalid records", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `[{"id":1}, 42, "text", null]`)

		records, err := NewReader(domain.FormatArray).Read(ctx, path)

		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.True(t, records[0].IsObject())
		assert.False(t, records[1].IsObject())
		assert.Equal(t, json.RawMessage(`42`), records[1].Raw)
		assert.False(t, records[2].IsObject())
		assert.False(t, records[3].IsObject())
	})

	t.Run("top-level object is malformed input", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `{"id":1}`)

		_, err := NewReader(domain.FormatArray).Read(ctx, path)

		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("invalid JSON is malformed input", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `[{"id":1},`)

		_, err := NewReader(domain.FormatArray).Read(ctx, path)

		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("trailing content after the array is malformed input", func(t *testing.T) {
		path := writeInput(t, "profiles.json", `[] {"id":1}`)

		_, err := NewReader(domain.FormatArray).Read(ctx, path)

		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("missing file is malformed input", func(t *testing.T) {
		_, err := NewReader(domain.FormatArray).Read(ctx, filepath.Join(t.TempDir(), "absent.json"))

		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestReader_Read_Lines(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes one record per line skipping blanks", func(t *testing.T) {
		path := writeInput(t, "profiles.jsonl", "{\"id\":1}\n\n{\"id\":2}\n")

		records, err := NewReader(domain.FormatLines).Read(ctx, path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 0, records[0].Index)
		assert.Equal(t, 1, records[1].Index)
	})

	t.Run("invalid line becomes structurally invalid record", func(t *testing.T) {
		path := writeInput(t, "profiles.jsonl", "{\"id\":1}\nnot json at all\n")

		records, err := NewReader(domain.FormatLines).Read(ctx, path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.False(t, records[1].IsObject())
		// The line is carried as a JSON string so the reject output stays well-formed.
		assert.Equal(t, json.RawMessage(`"not json at all"`), records[1].Raw)
	})

	t.Run("empty file yields zero records", func(t *testing.T) {
		path := writeInput(t, "profiles.jsonl", "")

		records, err := NewReader(domain.FormatLines).Read(ctx, path)

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestReader_Read_Auto(t *testing.T) {
	ctx := context.Background()

	t.Run("detects arrays", func(t *testing.T) {
		path := writeInput(t, "profiles.json", "  \n[{\"id\":1}]")

		records, err := NewReader(domain.FormatAuto).Read(ctx, path)

		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("falls back to lines", func(t *testing.T) {
		path := writeInput(t, "profiles.json", "{\"id\":1}\n{\"id\":2}\n")

		records, err := NewReader(domain.FormatAuto).Read(ctx, path)

		require.NoError(t, err)
		require.Len(t, records, 2)
	})
}

func TestReader_Read_UnknownFormat(t *testing.T) {
	_, err := NewReader(domain.Format("xml")).Read(context.Background(), "whatever.xml")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
