package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryInit       Category = "init"
	CategoryValidation Category = "validation"
	CategoryFormat     Category = "format"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// ProgressError is a structured error carrying a registered code, the rejected
// input and an optional hint.
type ProgressError struct {
	// Code is a unique error identifier (e.g., "P004").
	Code string

	// Category is the error type (init, validation, etc.).
	Category Category

	// Message is a short description of the error. When an input is attached
	// the message ends with it.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Input is the literal input that was rejected, if any.
	Input string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ProgressError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code. Errors without a code
// only match themselves.
func (e *ProgressError) Is(target error) bool {
	t, ok := target.(*ProgressError)
	if !ok || e.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithInput records the rejected input and appends it to the message.
// Strings are used verbatim, everything else is printed with %v.
func (e *ProgressError) WithInput(input any) *ProgressError {
	e.Input = inputString(input)
	e.Message = e.Message + ": " + e.Input
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ProgressError) WithSuggestion(s string) *ProgressError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ProgressError) WithDetail(d string) *ProgressError {
	e.Detail = d
	return e
}

// WithMessage replaces the registered message. Used where one code is
// reported from more than one place.
func (e *ProgressError) WithMessage(m string) *ProgressError {
	e.Message = m
	return e
}

// Wrap wraps another error.
func (e *ProgressError) Wrap(err error) *ProgressError {
	e.Wrapped = err
	return e
}

// New creates a ProgressError from a registered error code.
func New(code string) *ProgressError {
	template, ok := registry[code]
	if !ok {
		return &ProgressError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ProgressError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// FromError wraps a standard error in a ProgressError.
func FromError(err error, code string) *ProgressError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ProgressError); ok {
		return pe
	}
	return New(code).Wrap(err)
}

func inputString(input any) string {
	switch v := input.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
