package sample

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlsample/pkg/dialect"
)

// ErrNilTarget is returned when Attach is called without a FROM target.
var ErrNilTarget = errors.New("from target is required")

// FromTarget is the host query builder's view of the current FROM
// clause: whether it is a multi-table join, and the rendered SQL text
// of the single-table case. The text is opaque to this package.
type FromTarget interface {
	// IsJoin reports whether the target joins multiple tables.
	IsJoin() bool

	// SQL returns the rendered FROM fragment.
	SQL() string
}

// Render produces the sampling clause text for a spec:
//
//	TABLESAMPLE [METHOD] (FRACTION) [REPEATABLE (SEED)]
//
// Keywords and the method name follow the dialect's casing convention.
// A nil dialect renders the ANSI baseline. Render is pure: the same
// spec always yields identical text.
func Render(spec *Spec, d *dialect.Dialect) (string, error) {
	if spec == nil || spec.Fraction == nil {
		return "", &MissingFractionError{}
	}
	if d == nil {
		d = dialect.Default()
	}

	kw := d.SampleKeyword
	if kw == "" {
		kw = "tablesample"
	}
	repeatKw := d.RepeatKeyword
	if repeatKw == "" {
		repeatKw = "repeatable"
	}

	var b strings.Builder
	b.WriteString(d.Keyword(kw))
	if spec.Method != "" {
		b.WriteByte(' ')
		b.WriteString(d.Keyword(spec.Method))
	}
	b.WriteString(" (")
	b.WriteString(formatValue(spec.Fraction))
	b.WriteByte(')')
	if spec.Repeatable != nil {
		b.WriteByte(' ')
		b.WriteString(d.Keyword(repeatKw))
		b.WriteString(" (")
		b.WriteString(formatValue(spec.Repeatable))
		b.WriteByte(')')
	}
	return b.String(), nil
}

// Attach appends an already-rendered sampling clause to the host's FROM
// target. The clause text is concatenated verbatim after the target's
// SQL, with no re-parsing; callers include any separating whitespace in
// the clause. A multi-table join target fails with *JoinTargetError -
// there is no safe single side to sample.
func Attach(target FromTarget, clause string) (string, error) {
	if target == nil {
		return "", ErrNilTarget
	}
	if target.IsJoin() {
		return "", &JoinTargetError{Target: target.SQL()}
	}
	return target.SQL() + clause, nil
}

// formatValue renders a fraction or seed value. Raw expressions pass
// through verbatim; everything else uses its natural string form.
// Values are never parameterized here.
func formatValue(v any) string {
	switch t := v.(type) {
	case Raw:
		return string(t)
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
