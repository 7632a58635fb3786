// Package state records preview-run history in SQLite.
package state

import "time"

// PreviewRun is one executed sampled query.
type PreviewRun struct {
	ID         string
	Dialect    string
	Table      string
	SQL        string
	RowCount   int
	DurationMs int64
	CreatedAt  time.Time
}

// Store is the preview-history contract consumed by the engine and CLI.
type Store interface {
	// RecordPreview persists a preview run. An empty ID is assigned.
	RecordPreview(run *PreviewRun) error

	// ListPreviews returns the most recent runs, newest first.
	// limit <= 0 means no limit.
	ListPreviews(limit int) ([]*PreviewRun, error)

	// Close releases the underlying database.
	Close() error
}
