// Package sqlite provides the SQLite-backed run ledger.
//
// Every pipeline run is recorded with its batch ID, paths, counts and
// outcome so the history command can show what was processed when.
// Schema changes are applied through embedded migrations on open.
package sqlite
