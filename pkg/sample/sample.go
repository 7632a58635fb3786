// Package sample builds database-native TABLESAMPLE clauses.
//
// A sampling spec is normalized from caller options, rendered to a SQL
// fragment in a dialect's casing convention, and attached to an
// already-rendered FROM fragment. The package holds no state: each call
// is a pure transform, and a spec is consumed once per query compilation.
//
// Non-Raw fraction and seed values are interpolated as their string
// form without parameter binding or escaping. That matches the legacy
// contract this package replaces and is a documented limitation:
// callers feeding untrusted input should validate it first or construct
// specs from numeric types only.
package sample

import "fmt"

// Raw marks a pre-escaped SQL expression used verbatim in the rendered
// clause, with no quoting or escaping. The caller asserts the value is
// already valid SQL. This is the escape hatch for dialect-specific
// fraction syntax such as Raw("1000 ROWS") or Raw("15 PERCENT").
type Raw string

// Spec is a normalized sampling request. Construct it directly or via
// Normalize; it is consumed by Render and then discarded.
type Spec struct {
	// Fraction is the sample size: a number, a string, or a Raw
	// expression. Whether it means a percentage or a row count is
	// dialect-dependent. Required.
	Fraction any

	// Method names the sampling algorithm (e.g. "system", "bernoulli"
	// or a dialect extension). Empty means the dialect default.
	Method string

	// Repeatable is the deterministic-seed value. Nil omits the
	// REPEATABLE clause.
	Repeatable any
}

// Normalize converts caller-supplied sampling options into a Spec.
//
// A bare scalar is treated as the fraction. A map may carry "fraction",
// "method" and "repeatable" keys; the legacy key "type" is accepted as
// an alias for "method" indefinitely, with "method" winning when both
// are present. An existing Spec passes through after validation.
//
// Returns *InvalidSpecError for any other input shape and
// *MissingFractionError when no fraction is present.
func Normalize(input any) (*Spec, error) {
	switch v := input.(type) {
	case nil:
		return nil, &MissingFractionError{}
	case *Spec:
		if v == nil {
			return nil, &MissingFractionError{}
		}
		s := *v
		return validate(&s)
	case Spec:
		return validate(&v)
	case map[string]any:
		return normalizeMap(v)
	case Raw, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return &Spec{Fraction: v}, nil
	default:
		return nil, &InvalidSpecError{Value: input}
	}
}

func validate(s *Spec) (*Spec, error) {
	if s.Fraction == nil {
		return nil, &MissingFractionError{}
	}
	return s, nil
}

func normalizeMap(m map[string]any) (*Spec, error) {
	s := &Spec{}
	if f, ok := m["fraction"]; ok {
		s.Fraction = f
	}
	// Legacy alias for "method"; kept for old option maps. Lower
	// precedence, so a real "method" key below overwrites it.
	if t, ok := m["type"]; ok {
		s.Method = methodName(t)
	}
	if mm, ok := m["method"]; ok {
		s.Method = methodName(mm)
	}
	if r, ok := m["repeatable"]; ok {
		s.Repeatable = r
	}
	// Unknown keys are ignored, matching the legacy permissiveness.
	return validate(s)
}

func methodName(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
