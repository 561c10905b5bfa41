package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure surfaced by the client into the small
// taxonomy the UI layer acts on. The client never retries on its own; each
// call is at-most-once.
type ErrorKind string

const (
	// KindAuthenticationFailure covers rejected login or register attempts,
	// whatever the underlying cause. The UI shows one generic message.
	KindAuthenticationFailure ErrorKind = "authentication_failure"
	// KindAuthorization is a 401/403 on a resource call. The client does not
	// auto-logout on this; that decision belongs to the caller.
	KindAuthorization ErrorKind = "authorization_error"
	KindValidation    ErrorKind = "validation_error"
	KindNotFound      ErrorKind = "not_found"
	// KindNetwork means no response was received at all.
	KindNetwork ErrorKind = "network_error"
	KindServer  ErrorKind = "server_error"
)

// APIError is the single error type returned by every client operation.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == kind
}

// kindForStatus maps an HTTP status code to an ErrorKind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuthorization
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}
