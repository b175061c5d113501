package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
)

// StatusFor maps an error returned by the service layer to the HTTP status
// the API answers with.
func StatusFor(err error) int {
	var httpErr *HTTPError
	var validationErr *ValidationError
	var paymentErr *PaymentError

	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.As(err, &httpErr):
		return httpErr.Code
	case stderrors.As(err, &validationErr):
		return http.StatusBadRequest
	case stderrors.As(err, &paymentErr):
		return http.StatusPaymentRequired
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrSubmissionInFlight), stderrors.Is(err, ErrAlreadySubmitted), stderrors.Is(err, ErrConflict):
		return http.StatusConflict
	case stderrors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case stderrors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrIndexOutOfRange), stderrors.Is(err, ErrUnknownField):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
