package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status for err, defaulting to 400 for errors
// that carry none.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) && httpErr.Code != 0 {
		return httpErr.Code
	}
	return http.StatusBadRequest
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
