// Package engine assembles and executes sampled queries.
//
// It is the pipeline stage between caller options and the database:
// sampling options are normalized, rendered for the target dialect and
// attached to the FROM fragment before the statement is finalized. Any
// sampling failure aborts compilation - silently dropping the clause
// would change query semantics.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlsample/internal/state"
	"github.com/leapstack-labs/sqlsample/pkg/adapter"
	"github.com/leapstack-labs/sqlsample/pkg/dialect"
	"github.com/leapstack-labs/sqlsample/pkg/fromref"
	"github.com/leapstack-labs/sqlsample/pkg/sample"
)

// Query describes a sampled SELECT to compile.
type Query struct {
	// Columns to project; empty means *.
	Columns []string

	// From is the single-table (or join) target.
	From *fromref.FromClause

	// Where is a raw filter condition, empty for none.
	Where string

	// Limit caps the row count; 0 means no limit.
	Limit int

	// Sampling holds the caller's sampling options in any form
	// sample.Normalize accepts. Nil compiles an unsampled query.
	Sampling any
}

// BuildSQL compiles the query for dialect d.
func BuildSQL(q *Query, d *dialect.Dialect) (string, error) {
	if q == nil || q.From == nil || q.From.Source == nil {
		return "", fmt.Errorf("query has no FROM target")
	}

	fromSQL := q.From.SQL()
	if q.Sampling != nil {
		spec, err := sample.Normalize(q.Sampling)
		if err != nil {
			return "", fmt.Errorf("invalid sampling options: %w", err)
		}
		clause, err := sample.Render(spec, d)
		if err != nil {
			return "", fmt.Errorf("failed to render sampling clause: %w", err)
		}
		fromSQL, err = sample.Attach(q.From, " "+clause)
		if err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if len(q.Columns) == 0 {
		b.WriteByte('*')
	} else {
		b.WriteString(strings.Join(q.Columns, ", "))
	}
	b.WriteByte(' ')
	b.WriteString(fromSQL)
	if q.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Where)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}
	return b.String(), nil
}

// Result is the outcome of a preview run.
type Result struct {
	RunID    string
	SQL      string
	Columns  []string
	Rows     []map[string]any
	Duration time.Duration
}

// Engine runs sampled queries through a database adapter and records
// them in the preview history.
type Engine struct {
	adapter adapter.Adapter
	store   state.Store
	logger  *slog.Logger
}

// New creates an engine. store may be nil to skip history recording;
// a nil logger discards output.
func New(a adapter.Adapter, store state.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{adapter: a, store: store, logger: logger}
}

// Preview compiles the query for the adapter's dialect, executes it,
// and collects the rows.
func (e *Engine) Preview(ctx context.Context, q *Query) (*Result, error) {
	d := e.adapter.Dialect()
	sqlText, err := BuildSQL(q, d)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("running preview", slog.String("sql", sqlText))

	start := time.Now()
	rows, err := e.adapter.Query(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[col] = val
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	res := &Result{
		SQL:      sqlText,
		Columns:  cols,
		Rows:     results,
		Duration: time.Since(start),
	}

	if e.store != nil {
		run := &state.PreviewRun{
			Dialect:    d.Name,
			Table:      q.From.Source.Ref(),
			SQL:        sqlText,
			RowCount:   len(results),
			DurationMs: res.Duration.Milliseconds(),
		}
		if err := e.store.RecordPreview(run); err != nil {
			// History is best effort; the preview itself succeeded.
			e.logger.Warn("failed to record preview run", slog.Any("error", err))
		} else {
			res.RunID = run.ID
		}
	}

	return res, nil
}
