package api

import "fmt"

// ErrorKind classifies a failed call: either the request never produced a
// response, or the backend answered with a non-2xx status.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindStatus
)

// Error is the uniform failure type for every backend call, so pages do not
// re-derive the same error taxonomy per call site.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	// Message is the backend's message field, when the response body carried one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindTransport {
		return fmt.Sprintf("api: transport failure: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTransport reports whether err is a no-response failure.
func IsTransport(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindTransport
}

// StatusCode returns the HTTP status of a failed call, or 0 when none exists.
func StatusCode(err error) int {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.StatusCode
	}
	return 0
}

// ServerMessage returns the backend's message field from a failed call, if any.
func ServerMessage(err error) string {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Message
	}
	return ""
}
