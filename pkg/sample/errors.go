package sample

import "fmt"

// InvalidSpecError reports sampling options that are neither a bare
// fraction value nor a structured map.
type InvalidSpecError struct {
	Value any
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid sampling spec: expected a fraction value or an options map, got %T", e.Value)
}

// MissingFractionError reports a sampling spec with no fraction value.
type MissingFractionError struct{}

func (e *MissingFractionError) Error() string {
	return "sampling spec has no fraction"
}

// JoinTargetError reports a sampling request against a multi-table FROM
// target. Sampling a join is not defined; applying the clause to one
// side would silently change query semantics.
type JoinTargetError struct {
	Target string
}

func (e *JoinTargetError) Error() string {
	return fmt.Sprintf("cannot sample a multi-table FROM target: %s", e.Target)
}
