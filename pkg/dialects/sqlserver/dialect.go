// Package sqlserver provides the SQL Server sampling dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlserver

import "github.com/leapstack-labs/sqlsample/pkg/dialect"

func init() {
	dialect.Register(SQLServer)
}

// SQLServer is the T-SQL sampling dialect.
// TABLESAMPLE (n PERCENT | n ROWS) [ REPEATABLE (seed) ] - no method
// name; the unit lives inside the parentheses, so callers express
// "1000 ROWS" through the raw-expression escape hatch.
var SQLServer = &dialect.Dialect{
	Name:           "sqlserver",
	SampleKeyword:  "tablesample",
	RepeatKeyword:  "repeatable",
	SupportsMethod: false,
	SupportsRepeat: true,
	KeywordCase:    dialect.CaseUpper,
}
