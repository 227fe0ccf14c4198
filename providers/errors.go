package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingCredentials reports that the upstream API credentials were never
// configured. Surfaced before any request is made; never retried.
var ErrMissingCredentials = errors.New("missing API credentials")

// StatusError captures a non-success response from the upstream API.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream status %d for %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("upstream status %d for %s", e.StatusCode, e.URL)
}

// Temporary reports whether retrying the same request could plausibly succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// NotFound reports whether the upstream answered 404 for the resource.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
