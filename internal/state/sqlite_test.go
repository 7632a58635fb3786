package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(nil)
	require.NoError(t, s.Open(":memory:"))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndListPreviews(t *testing.T) {
	s := openTestStore(t)

	run := &PreviewRun{
		Dialect:    "duckdb",
		Table:      "events",
		SQL:        "SELECT * FROM events TABLESAMPLE RESERVOIR (5)",
		RowCount:   5,
		DurationMs: 12,
	}
	require.NoError(t, s.RecordPreview(run))
	assert.NotEmpty(t, run.ID, "RecordPreview should assign an ID")
	assert.False(t, run.CreatedAt.IsZero())

	runs, err := s.ListPreviews(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "events", runs[0].Table)
	assert.Equal(t, 5, runs[0].RowCount)
}

func TestListPreviewsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordPreview(&PreviewRun{
			Dialect:   "postgres",
			Table:     "t",
			SQL:       "SELECT 1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := s.ListPreviews(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].CreatedAt.After(runs[1].CreatedAt))
}

func TestStoreRequiresOpen(t *testing.T) {
	s := NewSQLiteStore(nil)

	err := s.RecordPreview(&PreviewRun{})
	assert.ErrorContains(t, err, "database not opened")

	_, err = s.ListPreviews(0)
	assert.ErrorContains(t, err, "database not opened")
}
