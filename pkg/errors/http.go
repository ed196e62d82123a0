package errors

import "net/http"

// HTTPError is an error that already knows how it should be rendered to an API client.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose status code is derived from code when code is a
// valid HTTP status, and 400 otherwise.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 400 && code < 600 {
		status = code
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "resource not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
