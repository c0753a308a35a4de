package intel

import (
	"errors"
	"fmt"
)

// Sentinel errors for the intel client. The three consent/policy gate
// errors should be surfaced to callers as policy explanations; network
// and API errors are transient "try again" failures.
var (
	// ErrInvalidURL means the input URL could not be parsed or encoded.
	ErrInvalidURL = errors.New("invalid url")

	// ErrNetwork wraps transport-level failures.
	ErrNetwork = errors.New("network error")

	// ErrActiveScanDisabled means the remote-config kill switch is off.
	ErrActiveScanDisabled = errors.New("active url scanning is disabled")

	// ErrUserOptOut means the user has not consented to active scanning.
	ErrUserOptOut = errors.New("user has not opted in to active scanning")

	// ErrSensitiveURL means the URL carries secrets (tokens, session
	// ids) that must not be submitted to a third party.
	ErrSensitiveURL = errors.New("url contains sensitive parameters")
)

// APIError is an unexpected HTTP status from a provider (anything other
// than 200, or the defined 404 outcomes).
type APIError struct {
	Provider   string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}
