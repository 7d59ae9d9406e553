package domain

import (
	"fmt"
	"time"
)

// ValidationError reports the field that failed validation and the
// constraint it violated. Validation is all-or-nothing: a payload either
// passes completely or never reaches storage.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Constraint)
}

func invalid(field, constraint string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint}
}

// DateLayout is the ISO-8601 calendar date form used for session and log
// dates. Dates are stored and filtered as plain text in this layout.
const DateLayout = "2006-01-02"

func validateDate(field, value string) *ValidationError {
	if value == "" {
		return invalid(field, "required")
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return invalid(field, "must be a date in YYYY-MM-DD form")
	}
	return nil
}
