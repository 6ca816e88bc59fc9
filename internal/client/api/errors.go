package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the server could not be reached or timed out.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the credential was rejected and could not be
	// refreshed. The session store has already been forced to log out by
	// the time a caller observes this error.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries a non-2xx status together with the server-supplied
// message and detail, for the calling screen to translate into a
// user-facing alert.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (%d): %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// isAuthFailure reports whether err is a 401 from the server.
func isAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
