package domain

import "fmt"

// ValidationError reports malformed input. Field names the offending input,
// positionally where it applies (e.g. "answers[7]").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
