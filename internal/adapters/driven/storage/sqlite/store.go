package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Drewrwhite/profile-data/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Store is the SQLite-backed run ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the ledger in the specified data
// directory. If dataDir is empty, defaults to ~/.profile-data/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".profile-data", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ledger.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save stores or updates a run by batch ID.
func (s *Store) Save(ctx context.Context, run domain.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (batch_id, input_path, ok_path, reject_path,
			total, accepted, rejected, started_at, finished_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(batch_id) DO UPDATE SET
			input_path = excluded.input_path,
			ok_path = excluded.ok_path,
			reject_path = excluded.reject_path,
			total = excluded.total,
			accepted = excluded.accepted,
			rejected = excluded.rejected,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			status = excluded.status
	`, run.BatchID, run.InputPath, run.OKPath, run.RejectPath,
		run.Total, run.Accepted, run.Rejected,
		run.StartedAt.UTC(), run.FinishedAt.UTC(), string(run.Status))

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by batch ID.
func (s *Store) Get(ctx context.Context, batchID string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT batch_id, input_path, ok_path, reject_path,
			total, accepted, rejected, started_at, finished_at, status
		FROM runs WHERE batch_id = ?
	`, batchID)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
// A limit <= 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Run, error) {
	query := `
		SELECT batch_id, input_path, ok_path, reject_path,
			total, accepted, rejected, started_at, finished_at, status
		FROM runs ORDER BY started_at DESC, batch_id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRun reads one ledger row.
func scanRun(row scanner) (*domain.Run, error) {
	var run domain.Run
	var status string
	var startedAt, finishedAt time.Time

	if err := row.Scan(&run.BatchID, &run.InputPath, &run.OKPath, &run.RejectPath,
		&run.Total, &run.Accepted, &run.Rejected,
		&startedAt, &finishedAt, &status); err != nil {
		return nil, err
	}

	run.StartedAt = startedAt.UTC()
	run.FinishedAt = finishedAt.UTC()
	run.Status = domain.RunStatus(status)
	return &run, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_runs.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
