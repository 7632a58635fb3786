package dialect

// builtinANSI is the SQL:2003 baseline sampling grammar:
// TABLESAMPLE <method> (<fraction>) REPEATABLE (<seed>).
// Registered automatically when the package is loaded.
var builtinANSI = &Dialect{
	Name:           "ansi",
	SampleKeyword:  "tablesample",
	RepeatKeyword:  "repeatable",
	Methods:        []string{"SYSTEM", "BERNOULLI"},
	SupportsMethod: true,
	SupportsRepeat: true,
	KeywordCase:    CaseUpper,
}

func init() {
	Register(builtinANSI)
}

// Default returns the ANSI baseline dialect.
// Used when a caller renders a clause without naming a dialect.
func Default() *Dialect {
	return builtinANSI
}
