package apisdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ============================================================================
// Sentinel Errors
// ============================================================================

var (
	// ErrNetwork wraps every transport failure (DNS, refused connection,
	// timeout). The request may be retried.
	ErrNetwork = errors.New("apisdk: network error")

	// ErrAlreadySubscribed is returned by SubscribeNewsletter when the backend
	// rejects the email as a duplicate (HTTP 400).
	ErrAlreadySubscribed = errors.New("apisdk: email already subscribed")

	// ErrUnexpectedResponse is returned when a 2xx body does not have the
	// documented shape.
	ErrUnexpectedResponse = errors.New("apisdk: unexpected response")
)

// ============================================================================
// APIError - backend error type
// ============================================================================

// APIError is a non-2xx response from the backend.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Message is the backend's human-readable message, surfaced verbatim
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Message returns the backend message carried by err, or err.Error().
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse builds an *APIError from a non-2xx response.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp APIError
	if err := json.Unmarshal(body, &errResp); err == nil && strings.TrimSpace(errResp.Message) != "" {
		errResp.StatusCode = resp.StatusCode
		return &errResp
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
