package models

import (
	"errors"
	"fmt"
)

// Sentinel errors, mapped to process exit codes by the CLI.
var (
	// ErrMissingAPIKey is returned before any network activity when no key is configured.
	ErrMissingAPIKey = errors.New("READWISE_API_KEY not found in environment or .env file")

	// ErrInvalidToken means the auth check did not answer 204.
	ErrInvalidToken = errors.New("invalid API token")

	// ErrNetwork wraps transport-level failures (DNS, timeouts, refused connections).
	ErrNetwork = errors.New("network request failed")

	ErrInvalidFlag = errors.New("invalid flag value")
)

// APIError is a non-success response from the list endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d", e.StatusCode)
}
