package resmsg

import (
	"net/http"
	"strings"
)

// HTTPError is the HTTP-facing failure produced by the service layer and
// written verbatim by handlers.
type HTTPError struct {
	Status   int
	Messages []string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return http.StatusText(e.Status) + ": " + strings.Join(e.Messages, "; ")
}

// Body returns the payload for this error.
func (e *HTTPError) Body() ErrorBody { return NewErrorBody(e.Status, e.Messages...) }

func newHTTPError(status int, msgs ...string) *HTTPError {
	return &HTTPError{Status: status, Messages: msgs}
}

func BadRequest(msgs ...string) *HTTPError { return newHTTPError(http.StatusBadRequest, msgs...) }
func NotFound(msg string) *HTTPError       { return newHTTPError(http.StatusNotFound, msg) }
func Conflict(msg string) *HTTPError       { return newHTTPError(http.StatusConflict, msg) }

// Internal returns a 500 with the fixed unexpected text.
func Internal() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, UnexpectedText)
}
