package apperror

import "net/http"

// HTTPError is a domain error carrying the HTTP status code it maps to.
// Anything that is not an HTTPError is treated as an internal fault by
// the error-handling middleware.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New builds an HTTPError with an explicit status code.
func New(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// BadRequest marks a client error caused by malformed input.
func BadRequest(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

// NotFound marks a missing resource or an empty result set.
func NotFound(message string) *HTTPError {
	return New(http.StatusNotFound, message)
}
