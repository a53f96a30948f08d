// Package parsererror defines the typed errors surfaced by the statement
// pipeline. Only schema-level problems become errors; row-level defects are
// dropped during parsing and never reach this package.
package parsererror

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required CSV columns absent from the header.
// It is fatal: no rows are processed once it is raised.
type MissingColumnsError struct {
	Missing []string
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	msg := fmt.Sprintf("statement is missing required columns: %s",
		strings.Join(e.Missing, ", "))
	if len(e.Found) > 0 {
		msg += fmt.Sprintf(" (found: %s)", strings.Join(e.Found, ", "))
	}
	return msg
}

// ParseError reports a failure to decode a single field value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports an input file that cannot be processed at all.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
