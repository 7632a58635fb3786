package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store instance.
// If logger is nil, a discard logger is used.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// Open opens a connection to the SQLite database and runs pending
// migrations. Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path

	if err := s.Migrate(); err != nil {
		_ = db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// generateID creates a new UUID.
func generateID() string {
	return uuid.New().String()
}

// RecordPreview persists a preview run. An empty ID is assigned.
func (s *SQLiteStore) RecordPreview(run *PreviewRun) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	if run.ID == "" {
		run.ID = generateID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	s.logger.Debug("recording preview run",
		slog.String("id", run.ID),
		slog.String("dialect", run.Dialect),
		slog.String("table", run.Table))

	_, err := s.db.Exec(`
		INSERT INTO preview_runs (id, dialect, table_name, sql_text, row_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Dialect, run.Table, run.SQL, run.RowCount, run.DurationMs, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record preview run: %w", err)
	}
	return nil
}

// ListPreviews returns the most recent runs, newest first.
func (s *SQLiteStore) ListPreviews(limit int) ([]*PreviewRun, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	query := `
		SELECT id, dialect, table_name, sql_text, row_count, duration_ms, created_at
		FROM preview_runs
		ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list preview runs: %w", err)
	}
	defer rows.Close()

	var runs []*PreviewRun
	for rows.Next() {
		run := &PreviewRun{}
		if err := rows.Scan(&run.ID, &run.Dialect, &run.Table, &run.SQL,
			&run.RowCount, &run.DurationMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preview run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preview runs: %w", err)
	}
	return runs, nil
}
