package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
	"golang.org/x/time/rate"
)

// Limit is a token bucket: Requests per Window on average, up to Burst at
// once.
type Limit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// Console route profiles. Each can be overridden with
// CONSOLE_RATELIMIT_<NAME>=<requests>/<window>[:<burst>], e.g.
// CONSOLE_RATELIMIT_LOGIN=10/1m:10.
var (
	// LoginLimit guards the password form, keyed by client and email.
	LoginLimit = LimitFromEnv("LOGIN", Limit{Requests: 5, Window: time.Minute, Burst: 5})

	// FormLimit guards the unauthenticated forms that reach the backend
	// (register, newsletter, contact) and account deletion.
	FormLimit = LimitFromEnv("FORM", Limit{Requests: 5, Window: time.Minute, Burst: 5})

	// WriteLimit guards back-office edits, deletes and reviews.
	WriteLimit = LimitFromEnv("WRITE", Limit{Requests: 20, Window: time.Minute, Burst: 20})

	// ReadLimit guards list and detail screens and health checks.
	ReadLimit = LimitFromEnv("READ", Limit{Requests: 100, Window: time.Minute, Burst: 100})
)

// LimitFromEnv returns def with CONSOLE_RATELIMIT_<name> applied. A value
// that does not parse is ignored.
func LimitFromEnv(name string, def Limit) Limit {
	raw := strings.TrimSpace(os.Getenv("CONSOLE_RATELIMIT_" + name))
	if raw == "" {
		return def
	}
	l, err := ParseLimit(raw)
	if err != nil {
		return def
	}
	return l
}

// ParseLimit reads "<requests>/<window>[:<burst>]". The burst defaults to
// the request count.
func ParseLimit(s string) (Limit, error) {
	spec, burst, hasBurst := strings.Cut(s, ":")
	n, window, ok := strings.Cut(spec, "/")
	if !ok {
		return Limit{}, fmt.Errorf("rate limit %q: want <requests>/<window>", s)
	}

	var (
		l   Limit
		err error
	)
	if l.Requests, err = strconv.Atoi(n); err != nil || l.Requests <= 0 {
		return Limit{}, fmt.Errorf("rate limit %q: bad request count", s)
	}
	if l.Window, err = time.ParseDuration(window); err != nil || l.Window <= 0 {
		return Limit{}, fmt.Errorf("rate limit %q: bad window", s)
	}
	l.Burst = l.Requests
	if hasBurst {
		if l.Burst, err = strconv.Atoi(burst); err != nil || l.Burst <= 0 {
			return Limit{}, fmt.Errorf("rate limit %q: bad burst", s)
		}
	}
	return l, nil
}

// KeyFunc names the bucket a request draws from. An empty key skips the
// limit.
type KeyFunc func(*http.Request) string

// ClientIP is the first X-Forwarded-For hop, then X-Real-IP, then the peer
// address. The console is expected to sit behind the UI's reverse proxy.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// operator keys by the signed-in operator set by RequireSession.
func operator(r *http.Request) string {
	if p, ok := PrincipalFromContext(r.Context()); ok {
		return "user:" + p.UserID
	}
	return ""
}

// bodyField keys by a top-level string field of a JSON body, lower-cased.
// The body is put back for the handler.
func bodyField(name string) KeyFunc {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil {
			return ""
		}

		var fields map[string]any
		if json.Unmarshal(raw, &fields) != nil {
			return ""
		}
		v, _ := fields[name].(string)
		return strings.ToLower(strings.TrimSpace(v))
	}
}

// firstOf uses the first key that is not empty.
func firstOf(keys ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		for _, k := range keys {
			if v := k(r); v != "" {
				return v
			}
		}
		return ""
	}
}

// both joins two keys; it is empty when either is.
func both(a, b KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		x, y := a(r), b(r)
		if x == "" || y == "" {
			return ""
		}
		return x + "|" + y
	}
}

// buckets holds one limiter per key. Keys idle for longer than idleAfter are
// dropped on the next sweep.
type buckets struct {
	limit     rate.Limit
	burst     int
	idleAfter time.Duration

	mu        sync.Mutex
	entries   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newBuckets(l Limit) *buckets {
	return &buckets{
		limit:     rate.Limit(float64(l.Requests) / l.Window.Seconds()),
		burst:     l.Burst,
		idleAfter: max(2*l.Window, 10*time.Minute),
		entries:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// take spends one token for key and reports how long to wait when none is
// left.
func (b *buckets) take(key string, now time.Time) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if now.Sub(b.lastSweep) > time.Minute {
		for k, e := range b.entries {
			if now.Sub(e.lastSeen) > b.idleAfter {
				delete(b.entries, k)
			}
		}
		b.lastSweep = now
	}

	e, ok := b.entries[key]
	if !ok {
		e = &bucket{lim: rate.NewLimiter(b.limit, b.burst)}
		b.entries[key] = e
	}
	e.lastSeen = now

	res := e.lim.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay, false
	}
	return 0, true
}

// RateLimit rejects requests beyond l per key with 429 and a Retry-After
// header.
func RateLimit(l Limit, key KeyFunc) Middleware {
	b := newBuckets(l)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			wait, ok := b.take(k, time.Now())
			if !ok {
				retry := int(math.Ceil(wait.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d/%s", l.Requests, l.Window))

				slogx.FromContext(r.Context()).Warn("rate limited",
					"key", k, "path", r.URL.Path, "retry_after", retry)
				WriteError(w, http.StatusTooManyRequests, "Trop de requêtes. Veuillez réessayer plus tard.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PerClient limits by client address.
func PerClient(l Limit) Middleware {
	return RateLimit(l, ClientIP)
}

// PerOperator limits by signed-in operator, falling back to the client
// address. Place it after RequireSession.
func PerOperator(l Limit) Middleware {
	return RateLimit(l, firstOf(operator, ClientIP))
}

// PerLogin limits password attempts per client and account: field names the
// JSON body field holding the account email. Attempts without the field
// share the client's bucket.
func PerLogin(l Limit, field string) Middleware {
	return RateLimit(l, firstOf(both(ClientIP, bodyField(field)), ClientIP))
}
