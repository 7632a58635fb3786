// Package duckdb provides the DuckDB sampling dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import "github.com/leapstack-labs/sqlsample/pkg/dialect"

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB sampling dialect.
// TABLESAMPLE method (fraction) with reservoir as the default method.
// DuckDB also accepts a USING SAMPLE suffix form; the TABLESAMPLE
// spelling is used here because it composes with the shared grammar.
var DuckDB = &dialect.Dialect{
	Name:           "duckdb",
	SampleKeyword:  "tablesample",
	RepeatKeyword:  "repeatable",
	Methods:        []string{"SYSTEM", "BERNOULLI", "RESERVOIR"},
	DefaultMethod:  "RESERVOIR",
	SupportsMethod: true,
	SupportsRepeat: true,
	KeywordCase:    dialect.CaseUpper,
}
