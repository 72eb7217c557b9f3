package apisdk

import (
	"encoding/json"
	"net/url"
)

// Authorized performs backend calls on behalf of the signed-in operator.
// It holds no token of its own.
type Authorized struct {
	client *Client
	tokens TokenSource
}

// escape makes a path segment safe to splice into a route.
func escape(id string) string {
	return url.PathEscape(id)
}

// decodeUser reads a mutation response that is either `{user: {...}}`, a
// bare user, or something else entirely. It returns nil when no user can be
// found, which callers treat as "keep what you sent".
func decodeUser(raw json.RawMessage) *User {
	if len(raw) == 0 {
		return nil
	}

	var env userEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.User != nil {
		return env.User
	}

	var u User
	if err := json.Unmarshal(raw, &u); err == nil && u.Key() != "" {
		return &u
	}
	return nil
}
