package services

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when no Google Sheets credential was
// configured. It is a configuration problem, not a transport one, and is
// reported before any network call is made.
var ErrMissingAPIKey = errors.New("API key not configured")

// UpstreamError carries a non-success status returned by the Google Sheets
// API together with the response body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Google Sheets API error: HTTP %d: %s", e.StatusCode, e.Body)
}
