// Package snowflake provides the Snowflake sampling dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlsample/pkg/dialect"

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake sampling dialect.
// SAMPLE and TABLESAMPLE are synonyms; the seed clause is spelled
// SEED (REPEATABLE is accepted by the server as an alias).
var Snowflake = &dialect.Dialect{
	Name:           "snowflake",
	SampleKeyword:  "sample",
	RepeatKeyword:  "seed",
	Methods:        []string{"BERNOULLI", "ROW", "SYSTEM", "BLOCK"},
	DefaultMethod:  "BERNOULLI",
	SupportsMethod: true,
	SupportsRepeat: true,
	KeywordCase:    dialect.CaseUpper,
}
