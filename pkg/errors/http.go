package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a caller-facing message.
// Delivery layers build these in mapError(); pkg/response knows how to
// render them.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
