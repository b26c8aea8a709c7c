// Package jsonfile reads and writes profile record documents on disk.
//
// Two encodings are supported: a single JSON array of record objects
// (the default), and JSON Lines (one object per line, the encoding the
// legacy loader consumed). Reads can auto-detect the encoding; writes
// with FormatAuto produce an array.
//
// Writes are atomic: the document is written to a temp file in the
// target directory and renamed into place, so a failed run never leaves
// a partial output behind.
package jsonfile
