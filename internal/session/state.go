package session

import "github.com/NazifToure01/AlloColis-admin/pkg/apisdk"

// State is where the session is in its lifecycle.
type State int

const (
	Initializing State = iota
	Unauthenticated
	Authenticated
	Renewing
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Renewing:
		return "renewing"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the session, safe to hand to views.
type Snapshot struct {
	State    State        `json:"-"`
	Identity *apisdk.User `json:"identity,omitempty"`
	Loading  bool         `json:"loading"`
}

// StateName is State.String, exported for JSON views.
func (s Snapshot) StateName() string { return s.State.String() }

// Authenticated reports whether the snapshot carries an identity.
func (s Snapshot) Authenticated() bool { return s.Identity != nil }
