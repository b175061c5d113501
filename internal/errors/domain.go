package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = stderrors.New("not found")
	ErrServiceUnavailable = stderrors.New("service unavailable")
	ErrSubmissionInFlight = stderrors.New("a booking submission is already in progress")
	ErrAlreadySubmitted   = stderrors.New("this booking has already been confirmed")
	ErrConflict           = stderrors.New("conflict")
	ErrForbidden          = stderrors.New("forbidden")
	ErrInvalidCredentials = stderrors.New("invalid credentials")
	ErrIndexOutOfRange    = stderrors.New("index out of range")
	ErrUnknownField       = stderrors.New("unknown field")
)

// ValidationError lists the request fields that are missing or invalid.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PaymentError is returned when the payment provider rejects the card.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return "payment declined: " + e.Reason
}

// Unavailable wraps err so that errors.Is(err, ErrServiceUnavailable) holds.
func Unavailable(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", what, ErrServiceUnavailable)
	}
	return fmt.Errorf("%s: %w: %v", what, ErrServiceUnavailable, err)
}
