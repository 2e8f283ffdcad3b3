package income

import (
	"fmt"
	"strings"
)

// Violation is one parameter failing its domain constraint.
type Violation struct {
	Field      string
	Value      any
	Constraint string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s (got %v)", v.Field, v.Constraint, v.Value)
}

type ErrInvalidParameter struct {
	error
	Violations []Violation
}

func NewErrInvalidParameter(violations ...Violation) *ErrInvalidParameter {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.String())
	}
	return &ErrInvalidParameter{
		error:      fmt.Errorf("invalid parameter: %s", strings.Join(msgs, "; ")),
		Violations: violations,
	}
}

// Fields returns the names of the offending parameters.
func (e *ErrInvalidParameter) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

type ErrInvalidRange struct {
	error
}

func NewErrInvalidRange(format string, args ...any) *ErrInvalidRange {
	return &ErrInvalidRange{fmt.Errorf("invalid farm size range: "+format, args...)}
}

func NewErrEmptyRange() *ErrInvalidRange {
	return NewErrInvalidRange("at least one farm size is required")
}
