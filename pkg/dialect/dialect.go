// Package dialect provides SQL dialect configuration for table sampling.
//
// This package contains the public contract for dialect definitions used by the
// sampling clause renderer and other SQL-aware components. Concrete dialect
// implementations are registered from pkg/dialects/*/ packages.
package dialect

import "strings"

// CaseFunc maps a clause keyword to the case the dialect renders it in.
// It is the host's SQL-casing convention: generated fragments must
// concatenate cleanly with the rest of the statement.
type CaseFunc func(string) string

// CaseUpper renders keywords in upper case (the conventional SQL style).
func CaseUpper(s string) string { return strings.ToUpper(s) }

// CaseLower renders keywords in lower case.
func CaseLower(s string) string { return strings.ToLower(s) }

// CaseIdentity renders keywords exactly as written.
func CaseIdentity(s string) string { return s }

// Dialect describes how a SQL dialect spells its table-sampling grammar.
// This is pure data - no database driver dependencies.
type Dialect struct {
	// Name identifies the dialect (e.g. "postgres", "snowflake").
	Name string

	// SampleKeyword introduces the sampling clause. Most dialects use
	// "tablesample"; Snowflake also accepts its "sample" synonym.
	SampleKeyword string

	// RepeatKeyword introduces the deterministic-seed clause.
	// "repeatable" for most dialects, "seed" for Snowflake.
	RepeatKeyword string

	// Methods lists the sampling algorithms the dialect documents
	// (e.g. SYSTEM, BERNOULLI). Informational: the renderer passes
	// any method name through, so dialect extensions keep working.
	Methods []string

	// DefaultMethod is the algorithm used when a request names none,
	// or empty when the storage engine decides.
	DefaultMethod string

	// SupportsMethod is false for dialects whose sampling clause takes
	// no algorithm name (e.g. SQL Server).
	SupportsMethod bool

	// SupportsRepeat is false for dialects without a seed clause.
	SupportsRepeat bool

	// KeywordCase is the dialect's keyword-casing convention.
	// Nil means CaseUpper.
	KeywordCase CaseFunc
}

// Keyword renders a clause keyword in the dialect's casing convention.
func (d *Dialect) Keyword(s string) string {
	if d.KeywordCase == nil {
		return CaseUpper(s)
	}
	return d.KeywordCase(s)
}

// HasMethod reports whether name is one of the dialect's documented
// sampling methods. Matching is case-insensitive.
func (d *Dialect) HasMethod(name string) bool {
	for _, m := range d.Methods {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}
