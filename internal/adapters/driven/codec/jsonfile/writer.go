package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.RecordWriter = (*Writer)(nil)

// Writer encodes record sequences to disk.
type Writer struct {
	format domain.Format
}

// NewWriter creates a writer for the given encoding.
// FormatAuto writes an array.
func NewWriter(format domain.Format) *Writer {
	return &Writer{format: format}
}

// Write serialises records to path atomically, overwriting any existing
// file. Failures wrap domain.ErrOutputWrite.
func (w *Writer) Write(_ context.Context, path string, records []domain.Record) error {
	if !w.format.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, w.format)
	}

	var data []byte
	var err error
	if w.format == domain.FormatLines {
		data, err = encodeLines(records)
	} else {
		data, err = encodeArray(records)
	}
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", domain.ErrOutputWrite, path, err)
	}

	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", domain.ErrOutputWrite, path, err)
	}
	return nil
}

// encodeArray renders records as an indented JSON array.
// Object records are re-marshalled from their fields (sorted keys, so
// reruns are byte-identical); structurally invalid records pass their
// original encoding through.
func encodeArray(records []domain.Record) ([]byte, error) {
	elems := make([]json.RawMessage, 0, len(records))
	for i := range records {
		elem, err := encodeRecord(&records[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	data, err := json.MarshalIndent(elems, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// encodeLines renders records as one compact JSON value per line.
func encodeLines(records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	for i := range records {
		elem, err := encodeRecord(&records[i])
		if err != nil {
			return nil, err
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, elem); err != nil {
			return nil, err
		}
		buf.Write(compact.Bytes())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// encodeRecord marshals one record element.
func encodeRecord(rec *domain.Record) (json.RawMessage, error) {
	if rec.IsObject() {
		return json.Marshal(rec.Fields)
	}
	if rec.Raw == nil {
		return json.RawMessage("null"), nil
	}
	return rec.Raw, nil
}

// writeAtomic writes data to a temp file in the target directory and
// renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
