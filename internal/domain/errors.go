package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation     = errors.New("validation error")
	ErrConfig         = errors.New("configuration error")
	ErrEmptyInput     = errors.New("input text is empty")
	ErrBudgetExceeded = errors.New("call budget exceeded")
	ErrBackend        = errors.New("generation backend error")
	ErrParse          = errors.New("response parse error")
	ErrSchema         = errors.New("response schema error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// BudgetExceededError is returned when a reservation would push the call
// count past the ceiling. Nothing was sent to the backend.
type BudgetExceededError struct {
	Used      int
	Ceiling   int
	Requested int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("call budget exceeded: %d used of %d, %d requested", e.Used, e.Ceiling, e.Requested)
}

func (e *BudgetExceededError) Unwrap() error { return ErrBudgetExceeded }

// ResponseError reports a backend call that failed or whose payload could
// not be used. Raw holds the payload as received, for diagnosis.
type ResponseError struct {
	Kind   error // ErrBackend, ErrParse or ErrSchema
	Stage  string
	Raw    string
	Detail string
	Err    error
}

func (e *ResponseError) Error() string {
	msg := e.Kind.Error()
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResponseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NewBackendError wraps a failure of the generation backend.
func NewBackendError(raw string, err error) *ResponseError {
	return &ResponseError{Kind: ErrBackend, Raw: raw, Err: err}
}

// NewParseError reports a payload that is not a JSON object with scores.
func NewParseError(raw, detail string, err error) *ResponseError {
	return &ResponseError{Kind: ErrParse, Raw: raw, Detail: detail, Err: err}
}

// NewSchemaError reports a parsed payload that violates the score shape.
func NewSchemaError(raw, detail string) *ResponseError {
	return &ResponseError{Kind: ErrSchema, Raw: raw, Detail: detail}
}

// RawPayload returns the backend payload attached to err, if any.
func RawPayload(err error) (string, bool) {
	var re *ResponseError
	if errors.As(err, &re) && re.Raw != "" {
		return re.Raw, true
	}
	return "", false
}
