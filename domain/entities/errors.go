package entities

import (
	"fmt"
	"strings"
)

// CompileError is returned by the instruction compiler before any browser
// is launched. MissingFields is machine-checkable (empty for a pure
// could-not-understand case); Suggestion is meant for the operator.
type CompileError struct {
	Reason        string
	MissingFields []FieldKind
	Suggestion    string
}

func (e *CompileError) Error() string {
	if len(e.MissingFields) == 0 {
		return e.Reason
	}
	names := make([]string, len(e.MissingFields))
	for i, f := range e.MissingFields {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: missing required fields: %s", e.Reason, strings.Join(names, ", "))
}
