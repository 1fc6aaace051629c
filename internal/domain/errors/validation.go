package errors

import (
	"net/http"
	"strings"
)

// ValidationError carries every rule a request body broke
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a validation failure from field errors
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Msg)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	if len(e.fields) == 0 {
		return "Invalid request"
	}

	return e.fields[0].Msg
}

func (e *ValidationError) Details() string {
	return ""
}

func (e *ValidationError) FieldErrors() []FieldError {
	return e.fields
}
