// Package errors provides the API error envelope returned by all HTTP
// endpoints.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorResponse is the body sent with every non-2xx response. TimeStamp is
// the server time in time.UnixDate layout; HTTPStatus carries the numeric
// code and reason phrase, e.g. "404 Not Found".
type ErrorResponse struct {
	Message    string `json:"Message"`
	TimeStamp  string `json:"TimeStamp"`
	HTTPStatus string `json:"httpStatus"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.HTTPStatus, e.Message)
}

// Status recovers the numeric status code from the envelope.
func (e ErrorResponse) Status() int {
	var code int
	if _, err := fmt.Sscanf(e.HTTPStatus, "%d", &code); err != nil {
		return http.StatusInternalServerError
	}
	return code
}

// New builds an envelope for the given status code and message, stamped
// with the current time.
func New(status int, message string) ErrorResponse {
	return ErrorResponse{
		Message:    message,
		TimeStamp:  time.Now().Format(time.UnixDate),
		HTTPStatus: fmt.Sprintf("%d %s", status, http.StatusText(status)),
	}
}

// NotFound builds a 404 envelope.
func NotFound(message string) ErrorResponse {
	return New(http.StatusNotFound, message)
}

// Unauthorized builds a 401 envelope.
func Unauthorized(message string) ErrorResponse {
	return New(http.StatusUnauthorized, message)
}

// BadRequest builds a 400 envelope.
func BadRequest(message string) ErrorResponse {
	return New(http.StatusBadRequest, message)
}

// Internal builds a 500 envelope.
func Internal(message string) ErrorResponse {
	return New(http.StatusInternalServerError, message)
}
