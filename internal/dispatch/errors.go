package dispatch

import (
	"errors"
	"fmt"
)

// ErrSessionInvalidated signals that the backend rejected the current
// credential. The dispatcher wraps every 401 in it so a top-level caller
// can detect the condition with errors.Is and route the user back to login.
var ErrSessionInvalidated = errors.New("session invalidated")

// Kind classifies a failed call.
type Kind string

const (
	// KindRejected is a 4xx business rejection carrying a backend message.
	KindRejected Kind = "rejected"
	// KindUnauthorized is a 401; the credential has been discarded.
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound is a 404.
	KindNotFound Kind = "not_found"
	// KindServerFault is any 5xx.
	KindServerFault Kind = "server_fault"
	// KindTransport means no response reached the client.
	KindTransport Kind = "transport"
)

// APIError describes a failed call through the dispatcher.
type APIError struct {
	Kind   Kind
	Status int // 0 for transport failures
	Detail string
	err    error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Status > 0 {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return "request failed"
}

func (e *APIError) Unwrap() error {
	return e.err
}

// IsInvalidated reports whether err stems from a 401 session teardown.
func IsInvalidated(err error) bool {
	return errors.Is(err, ErrSessionInvalidated)
}

// Detail extracts the backend-provided message from err, falling back to
// the given message when none is available.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
