// Package idx mints the ULID request ids stamped on every console request.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a request id for the current time. Ids sort by creation time,
// so log lines grepped by id come out in order.
func New() string {
	return NewAt(time.Now().UTC())
}

// NewAt returns a request id for t.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
