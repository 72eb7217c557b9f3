package session

import (
	"errors"
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

var (
	// ErrInvalidCredentials is returned when the backend refuses a login.
	ErrInvalidCredentials = errors.New("session: invalid credentials")

	// ErrNetwork is the SDK's transport error, re-exported so callers of this
	// package need not import apisdk to recognise it.
	ErrNetwork = apisdk.ErrNetwork

	// ErrAccessDenied is returned when a non-admin signs in to the console.
	ErrAccessDenied = errors.New("session: access denied")

	// ErrSessionExpired is returned when the backend no longer knows the
	// refresh token. The session has been cleared.
	ErrSessionExpired = errors.New("session: expired")

	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("session: not authenticated")

	ErrDeletion       = errors.New("session: account deletion failed")
	ErrUpdate         = errors.New("session: profile update failed")
	ErrReasonRequired = errors.New("session: report reason required")
	ErrRegistration   = errors.New("session: registration failed")

	// errSessionReplaced marks a renewal that finished after the session it
	// belonged to was signed out or replaced.
	errSessionReplaced = errors.New("session: replaced during renewal")
)

// isInvalidation reports whether a renewal failure means the refresh token
// is gone for good, as opposed to a transient outage.
func isInvalidation(err error) bool {
	switch apisdk.StatusCode(err) {
	case http.StatusNotFound, http.StatusUnauthorized:
		return true
	default:
		return false
	}
}

// isClientError reports a 4xx answer from the backend.
func isClientError(err error) bool {
	code := apisdk.StatusCode(err)
	return code >= 400 && code < 500
}
