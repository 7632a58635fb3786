// Package postgres provides the PostgreSQL sampling dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/sqlsample/pkg/dialect"

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL sampling dialect.
// TABLESAMPLE { SYSTEM | BERNOULLI } (percentage) [ REPEATABLE (seed) ],
// plus extension methods from the tsm_system_rows / tsm_system_time modules.
var Postgres = &dialect.Dialect{
	Name:          "postgres",
	SampleKeyword: "tablesample",
	RepeatKeyword: "repeatable",
	Methods: []string{
		"SYSTEM", "BERNOULLI",
		// contrib sampling methods
		"SYSTEM_ROWS", "SYSTEM_TIME",
	},
	DefaultMethod:  "", // Postgres requires an explicit method; callers usually pass SYSTEM
	SupportsMethod: true,
	SupportsRepeat: true,
	KeywordCase:    dialect.CaseUpper,
}
