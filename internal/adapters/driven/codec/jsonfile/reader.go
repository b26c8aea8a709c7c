package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RecordReader = (*Reader)(nil)

// Reader decodes profile record documents.
type Reader struct {
	format domain.Format
}

// NewReader creates a reader for the given encoding.
func NewReader(format domain.Format) *Reader {
	return &Reader{format: format}
}

// Read loads and decodes the document at path.
// Structurally invalid elements become records with nil Fields so the
// pipeline can route them to the reject output; only document-level
// failures return an error.
func (r *Reader) Read(_ context.Context, path string) ([]domain.Record, error) {
	if !r.format.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, r.format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrMalformedInput, path, err)
	}

	format := r.format
	if format == domain.FormatAuto {
		format = detect(data)
	}

	switch format {
	case domain.FormatArray:
		return readArray(data)
	case domain.FormatLines:
		return readLines(data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// detect sniffs the encoding: a document opening with '[' is an array,
// anything else is treated as lines.
func detect(data []byte) domain.Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return domain.FormatArray
	}
	return domain.FormatLines
}

// readArray decodes a top-level JSON array of records.
func readArray(data []byte) ([]domain.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var elems []json.RawMessage
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("%w: document is not a JSON array: %w", domain.ErrMalformedInput, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after the array", domain.ErrMalformedInput)
	}

	records := make([]domain.Record, 0, len(elems))
	for i, elem := range elems {
		fields, _ := decodeObject(elem)
		records = append(records, domain.Record{
			Index:  i,
			Fields: fields,
			Raw:    elem,
		})
	}
	return records, nil
}

// readLines decodes one JSON object per non-blank line.
// A line that is not valid JSON at all becomes a structurally invalid
// record whose Raw holds the line re-encoded as a JSON string, keeping
// the reject output well-formed.
func readLines(data []byte) ([]domain.Record, error) {
	var records []domain.Record

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		rec := domain.Record{Index: len(records)}
		if json.Valid(line) {
			rec.Raw = json.RawMessage(append([]byte(nil), line...))
			rec.Fields, _ = decodeObject(line)
		} else {
			quoted, err := json.Marshal(string(line))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", domain.ErrMalformedInput, len(records), err)
			}
			rec.Raw = quoted
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeObject decodes an element into a field map, preserving numeric
// fidelity via json.Number. Returns false when the element is not a
// JSON object.
func decodeObject(raw []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}
