// Package fromref models the FROM-clause target of a generated query.
//
// It is the concrete counterpart to sample.FromTarget: a single table
// reference or a join chain, with the rendered SQL text of the clause.
// Identifiers are emitted as written; quoting is the caller's concern.
package fromref

import "strings"

// Standard ANSI SQL join type values.
const (
	JoinInner = "INNER"
	JoinLeft  = "LEFT"
	JoinRight = "RIGHT"
	JoinFull  = "FULL"
	JoinCross = "CROSS"
)

// TableName is a (possibly qualified, possibly aliased) table reference.
type TableName struct {
	Catalog string
	Schema  string
	Name    string
	Alias   string
}

// Ref returns the rendered table reference, e.g. "sales.orders o".
func (t *TableName) Ref() string {
	var b strings.Builder
	if t.Catalog != "" {
		b.WriteString(t.Catalog)
		b.WriteByte('.')
	}
	if t.Schema != "" {
		b.WriteString(t.Schema)
		b.WriteByte('.')
	}
	b.WriteString(t.Name)
	if t.Alias != "" {
		b.WriteByte(' ')
		b.WriteString(t.Alias)
	}
	return b.String()
}

// Join is one join step appended to a FROM clause.
type Join struct {
	Type      string // JoinInner, JoinLeft, ... (empty means INNER)
	Table     *TableName
	Condition string // raw ON condition; empty for CROSS joins
}

// FromClause is a FROM target: a source table plus zero or more joins.
// It implements sample.FromTarget.
type FromClause struct {
	Source *TableName
	Joins  []*Join
}

// From builds a single-table FROM clause.
func From(t *TableName) *FromClause {
	return &FromClause{Source: t}
}

// Join appends a join step and returns the clause for chaining.
func (f *FromClause) Join(joinType string, t *TableName, condition string) *FromClause {
	f.Joins = append(f.Joins, &Join{Type: joinType, Table: t, Condition: condition})
	return f
}

// IsJoin reports whether the clause references more than one table.
func (f *FromClause) IsJoin() bool {
	return len(f.Joins) > 0
}

// SQL returns the rendered FROM fragment, e.g. "FROM orders o" or
// "FROM orders o LEFT JOIN customers c ON o.customer_id = c.id".
func (f *FromClause) SQL() string {
	var b strings.Builder
	b.WriteString("FROM ")
	b.WriteString(f.Source.Ref())
	for _, j := range f.Joins {
		b.WriteByte(' ')
		joinType := j.Type
		if joinType == "" {
			joinType = JoinInner
		}
		b.WriteString(joinType)
		b.WriteString(" JOIN ")
		b.WriteString(j.Table.Ref())
		if j.Condition != "" {
			b.WriteString(" ON ")
			b.WriteString(j.Condition)
		}
	}
	return b.String()
}
