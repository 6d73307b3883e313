package grocery

import (
	"fmt"
)

// ErrorKind is the closed set of ways shopping list generation fails.
type ErrorKind string

const (
	KindValidation  ErrorKind = "VALIDATION_ERROR"
	KindGeneration  ErrorKind = "GENERATION_ERROR"
	KindEmptyResult ErrorKind = "EMPTY_RESULT_ERROR"
)

const (
	ReasonNoMealPlan       = "No meal plan provided"
	ReasonGenerationFailed = "Failed to generate shopping list"
	ReasonEmptyResult      = "Generated shopping list is empty"
)

// Error is returned for every generation failure. Match on Kind, or use
// errors.Is against ErrValidation, ErrGeneration and ErrEmptyResult.
type Error struct {
	Kind    ErrorKind
	Reason  string
	Details map[string]interface{}
	Cause   error
}

// Sentinels for errors.Is. Only Kind is compared.
var (
	ErrValidation  = &Error{Kind: KindValidation}
	ErrGeneration  = &Error{Kind: KindGeneration}
	ErrEmptyResult = &Error{Kind: KindEmptyResult}
)

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewValidationError(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

// NewGenerationError wraps a failed model call. The cause is kept both for
// errors.Unwrap and as a string in Details for logging and API responses.
func NewGenerationError(cause error) *Error {
	details := map[string]interface{}{}
	if cause != nil {
		details["cause"] = cause.Error()
	}
	return &Error{
		Kind:    KindGeneration,
		Reason:  ReasonGenerationFailed,
		Details: details,
		Cause:   cause,
	}
}

func NewEmptyResultError(details map[string]interface{}) *Error {
	return &Error{Kind: KindEmptyResult, Reason: ReasonEmptyResult, Details: details}
}
