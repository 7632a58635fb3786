package engine

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/leapstack-labs/sqlsample/internal/state"
	"github.com/leapstack-labs/sqlsample/pkg/adapter"
	"github.com/leapstack-labs/sqlsample/pkg/dialect"
	"github.com/leapstack-labs/sqlsample/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlsample/pkg/fromref"
	"github.com/leapstack-labs/sqlsample/pkg/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsFrom() *fromref.FromClause {
	return fromref.From(&fromref.TableName{Name: "events", Alias: "e"})
}

func TestBuildSQLUnsampled(t *testing.T) {
	got, err := BuildSQL(&Query{From: eventsFrom()}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events e", got)
}

func TestBuildSQLSampled(t *testing.T) {
	q := &Query{
		Columns:  []string{"e.id", "e.name"},
		From:     eventsFrom(),
		Where:    "e.active",
		Limit:    100,
		Sampling: map[string]any{"fraction": 5, "method": "system", "repeatable": 42},
	}
	got, err := BuildSQL(q, postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT e.id, e.name FROM events e TABLESAMPLE SYSTEM (5) REPEATABLE (42) WHERE e.active LIMIT 100",
		got)
}

func TestBuildSQLBareFraction(t *testing.T) {
	got, err := BuildSQL(&Query{From: eventsFrom(), Sampling: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events e TABLESAMPLE (10)", got)
}

func TestBuildSQLRejectsJoinTarget(t *testing.T) {
	from := eventsFrom().Join(fromref.JoinLeft, &fromref.TableName{Name: "users", Alias: "u"}, "e.user_id = u.id")
	_, err := BuildSQL(&Query{From: from, Sampling: 5}, nil)
	var joinErr *sample.JoinTargetError
	assert.ErrorAs(t, err, &joinErr)
}

func TestBuildSQLJoinWithoutSampling(t *testing.T) {
	// Joins are fine as long as no sampling is requested
	from := eventsFrom().Join(fromref.JoinLeft, &fromref.TableName{Name: "users", Alias: "u"}, "e.user_id = u.id")
	got, err := BuildSQL(&Query{From: from}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events e LEFT JOIN users u ON e.user_id = u.id", got)
}

func TestBuildSQLInvalidSamplingAborts(t *testing.T) {
	_, err := BuildSQL(&Query{From: eventsFrom(), Sampling: []int{1, 2}}, nil)
	var specErr *sample.InvalidSpecError
	require.ErrorAs(t, err, &specErr)

	_, err = BuildSQL(&Query{From: eventsFrom(), Sampling: map[string]any{"method": "system"}}, nil)
	var missing *sample.MissingFractionError
	assert.ErrorAs(t, err, &missing)
}

func TestBuildSQLNoFromTarget(t *testing.T) {
	_, err := BuildSQL(&Query{}, nil)
	assert.ErrorContains(t, err, "no FROM target")
}

// mockAdapter wraps a sqlmock-backed connection for preview tests.
type mockAdapter struct {
	adapter.BaseSQLAdapter
}

func (m *mockAdapter) Connect(_ context.Context, _ adapter.Config) error { return nil }
func (m *mockAdapter) Dialect() *dialect.Dialect                         { return postgres.Postgres }

func newMockAdapter(t *testing.T) (*mockAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &mockAdapter{BaseSQLAdapter: adapter.BaseSQLAdapter{DB: db}}, mock
}

func TestPreviewExecutesSampledQuery(t *testing.T) {
	a, mock := newMockAdapter(t)
	mock.ExpectQuery(`SELECT \* FROM events e TABLESAMPLE SYSTEM \(5\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "alpha").
			AddRow(2, "beta"))

	store := state.NewSQLiteStore(nil)
	require.NoError(t, store.Open(":memory:"))
	defer store.Close()

	e := New(a, store, nil)
	res, err := e.Preview(context.Background(), &Query{
		From:     eventsFrom(),
		Sampling: map[string]any{"fraction": 5, "method": "system"},
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM events e TABLESAMPLE SYSTEM (5)", res.SQL)
	assert.Equal(t, []string{"id", "name"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "alpha", res.Rows[0]["name"])
	assert.NotEmpty(t, res.RunID)
	assert.NoError(t, mock.ExpectationsWereMet())

	runs, err := store.ListPreviews(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, res.RunID, runs[0].ID)
	assert.Equal(t, res.SQL, runs[0].SQL)
	assert.Equal(t, 2, runs[0].RowCount)
}

func TestPreviewWithoutStore(t *testing.T) {
	a, mock := newMockAdapter(t)
	mock.ExpectQuery(`SELECT \* FROM events e TABLESAMPLE \(1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	e := New(a, nil, nil)
	res, err := e.Preview(context.Background(), &Query{From: eventsFrom(), Sampling: 1})
	require.NoError(t, err)
	assert.Empty(t, res.RunID)
	assert.Empty(t, res.Rows)
}

func TestPreviewAbortsOnSamplingError(t *testing.T) {
	a, _ := newMockAdapter(t)

	e := New(a, nil, nil)
	_, err := e.Preview(context.Background(), &Query{
		From:     eventsFrom(),
		Sampling: map[string]any{"repeatable": 1},
	})
	var missing *sample.MissingFractionError
	assert.ErrorAs(t, err, &missing)
}

var _ adapter.Adapter = (*mockAdapter)(nil)
