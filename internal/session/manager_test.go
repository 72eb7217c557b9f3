package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/internal/store/drivers/memory"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Fixtures
// ============================================================================

// routes records every navigation the manager performs.
type routes struct {
	mu   sync.Mutex
	seen []session.Route
}

func (r *routes) Navigate(to session.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, to)
}

func (r *routes) all() []session.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]session.Route(nil), r.seen...)
}

type fixture struct {
	mgr    *session.Manager
	store  store.Store
	routes *routes
}

func newFixture(t *testing.T, mux *http.ServeMux) *fixture {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return newFixtureWith(t, apisdk.NewClient(srv.URL), memory.NewStore())
}

func newFixtureWith(t *testing.T, client *apisdk.Client, st store.Store) *fixture {
	t.Helper()

	nav := &routes{}
	return &fixture{
		mgr:    session.New(client, st, nav, slogx.Discard()),
		store:  st,
		routes: nav,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func authBody(token, refresh, id, role string) map[string]any {
	return map[string]any{
		"token":        token,
		"refreshToken": refresh,
		"user":         map[string]any{"id": id, "fullName": "Awa Diallo", "email": "awa@example.com", "role": role},
	}
}

// signedToken issues an HS256 token expiring at exp. The console never
// verifies signatures so the key is irrelevant.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// unreadableStore fails every read the way a sealed store does after the
// master key changed.
type unreadableStore struct {
	*memory.Store
}

func (unreadableStore) Get(context.Context, string) (string, error) {
	return "", errors.New("cipher: message authentication failed")
}

// signIn drives an admin sign-in against a mux that accepts any password.
func signIn(t *testing.T, f *fixture, token string) {
	t.Helper()
	require.NoError(t, f.mgr.AdminSignIn(context.Background(), "awa@example.com", "secret"))
	got, err := f.mgr.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, token, got)
}

func adminLogin(token, refresh string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, authBody(token, refresh, "u1", apisdk.RoleAdmin))
	}
}

// ============================================================================
// Init
// ============================================================================

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("no stored token", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
		})
		f := newFixture(t, mux)

		require.Equal(t, session.Initializing, f.mgr.Snapshot().State)
		require.NoError(t, f.mgr.Init(context.Background()))

		snap := f.mgr.Snapshot()
		require.Equal(t, session.Unauthenticated, snap.State)
		require.Nil(t, snap.Identity)
		require.False(t, snap.Loading)
		require.Equal(t, []session.Route{session.RouteLogin}, f.routes.all())
		require.Zero(t, calls.Load())
	})

	t.Run("valid token rotates", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "rt-1", body["refreshToken"])
			writeJSON(w, http.StatusOK, authBody("at-2", "rt-2", "u1", apisdk.RoleAdmin))
		})
		f := newFixture(t, mux)
		require.NoError(t, f.store.Set(context.Background(), store.KeyRefreshToken, "rt-1"))

		require.NoError(t, f.mgr.Init(context.Background()))

		snap := f.mgr.Snapshot()
		require.Equal(t, session.Authenticated, snap.State)
		require.NotNil(t, snap.Identity)
		require.Equal(t, "u1", snap.Identity.Key())
		require.Equal(t, []session.Route{session.RouteHome}, f.routes.all())

		stored, err := f.store.Get(context.Background(), store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-2", stored)

		token, err := f.mgr.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, "at-2", token)
	})

	for _, code := range []int{http.StatusNotFound, http.StatusUnauthorized} {
		t.Run("rejected token "+http.StatusText(code), func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, code, map[string]string{"message": "Refresh token introuvable"})
			})
			f := newFixture(t, mux)
			require.NoError(t, f.store.Set(context.Background(), store.KeyRefreshToken, "rt-1"))

			require.NoError(t, f.mgr.Init(context.Background()))

			require.Equal(t, session.Unauthenticated, f.mgr.Snapshot().State)
			require.Equal(t, []session.Route{session.RouteLogin}, f.routes.all())

			_, err := f.store.Get(context.Background(), store.KeyRefreshToken)
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	}

	t.Run("transient failure keeps token", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
		})
		f := newFixture(t, mux)
		require.NoError(t, f.store.Set(context.Background(), store.KeyRefreshToken, "rt-1"))

		err := f.mgr.Init(context.Background())
		require.Error(t, err)
		require.Equal(t, http.StatusInternalServerError, apisdk.StatusCode(err))

		snap := f.mgr.Snapshot()
		require.Equal(t, session.Unauthenticated, snap.State)
		require.False(t, snap.Loading)
		require.Empty(t, f.routes.all())

		stored, err := f.store.Get(context.Background(), store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-1", stored)
	})

	t.Run("network failure keeps token", func(t *testing.T) {
		t.Parallel()

		st := memory.NewStore()
		require.NoError(t, st.Set(context.Background(), store.KeyRefreshToken, "rt-1"))
		f := newFixtureWith(t, apisdk.NewClient("http://127.0.0.1:1"), st)

		err := f.mgr.Init(context.Background())
		require.ErrorIs(t, err, session.ErrNetwork)

		stored, err := st.Get(context.Background(), store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-1", stored)
	})

	t.Run("unreadable slot is cleared", func(t *testing.T) {
		t.Parallel()

		inner := memory.NewStore()
		require.NoError(t, inner.Set(context.Background(), store.KeyRefreshToken, "garbage"))
		f := newFixtureWith(t, apisdk.NewClient("http://127.0.0.1:1"), unreadableStore{inner})

		require.NoError(t, f.mgr.Init(context.Background()))
		require.Equal(t, session.Unauthenticated, f.mgr.Snapshot().State)
		require.Equal(t, []session.Route{session.RouteLogin}, f.routes.all())

		_, err := inner.Get(context.Background(), store.KeyRefreshToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

// ============================================================================
// Sign in / out
// ============================================================================

func TestAdminSignIn(t *testing.T) {
	t.Parallel()

	t.Run("admin", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin("at-1", "rt-1"))
		f := newFixture(t, mux)

		signIn(t, f, "at-1")

		snap := f.mgr.Snapshot()
		require.True(t, snap.Authenticated())
		require.Equal(t, apisdk.RoleAdmin, snap.Identity.Role)
		require.False(t, snap.Loading)
		require.Equal(t, []session.Route{session.RouteHome}, f.routes.all())

		stored, err := f.store.Get(context.Background(), store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-1", stored)
	})

	t.Run("non-admin leaves no trace", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, authBody("at-1", "rt-1", "u2", apisdk.RoleUser))
		})
		f := newFixture(t, mux)
		require.NoError(t, f.mgr.Init(context.Background()))

		err := f.mgr.AdminSignIn(context.Background(), "user@example.com", "secret")
		require.ErrorIs(t, err, session.ErrAccessDenied)

		snap := f.mgr.Snapshot()
		require.Equal(t, session.Unauthenticated, snap.State)
		require.Nil(t, snap.Identity)
		require.False(t, snap.Loading)
		require.Equal(t, []session.Route{session.RouteLogin}, f.routes.all())

		_, err = f.store.Get(context.Background(), store.KeyRefreshToken)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = f.mgr.Token(context.Background())
		require.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Identifiants invalides"})
		})
		f := newFixture(t, mux)

		err := f.mgr.AdminSignIn(context.Background(), "awa@example.com", "wrong")
		require.ErrorIs(t, err, session.ErrInvalidCredentials)
		require.Contains(t, err.Error(), "Identifiants invalides")
		require.False(t, f.mgr.Snapshot().Loading)
	})

	t.Run("network failure", func(t *testing.T) {
		t.Parallel()

		f := newFixtureWith(t, apisdk.NewClient("http://127.0.0.1:1"), memory.NewStore())

		err := f.mgr.AdminSignIn(context.Background(), "awa@example.com", "secret")
		require.ErrorIs(t, err, session.ErrNetwork)
		require.NotErrorIs(t, err, session.ErrInvalidCredentials)
	})
}

func TestSignInAcceptsAnyRole(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, authBody("at-1", "rt-1", "u2", apisdk.RoleUser))
	})
	f := newFixture(t, mux)

	require.NoError(t, f.mgr.SignIn(context.Background(), "user@example.com", "secret"))
	require.Equal(t, apisdk.RoleUser, f.mgr.Snapshot().Identity.Role)
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/register", func(w http.ResponseWriter, r *http.Request) {
			var req apisdk.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Awa Diallo", req.FullName)
			writeJSON(w, http.StatusCreated, authBody("at-1", "rt-1", "u3", apisdk.RoleUser))
		})
		f := newFixture(t, mux)

		err := f.mgr.SignUp(context.Background(), apisdk.RegisterRequest{
			FullName: "Awa Diallo",
			Email:    "awa@example.com",
			Phone:    "+221770000000",
			Password: "secret",
		})
		require.NoError(t, err)
		require.True(t, f.mgr.Snapshot().Authenticated())
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/register", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "Email déjà utilisé"})
		})
		f := newFixture(t, mux)

		err := f.mgr.SignUp(context.Background(), apisdk.RegisterRequest{Email: "awa@example.com"})
		require.ErrorIs(t, err, session.ErrRegistration)
		require.Equal(t, "Email déjà utilisé", apisdk.Message(err))
	})
}

func TestSignOutIsIdempotent(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/admin/login", adminLogin("at-1", "rt-1"))
	f := newFixture(t, mux)
	signIn(t, f, "at-1")

	for range 2 {
		require.NoError(t, f.mgr.SignOut(context.Background()))

		snap := f.mgr.Snapshot()
		require.Equal(t, session.Unauthenticated, snap.State)
		require.Nil(t, snap.Identity)
		require.False(t, snap.Loading)

		_, err := f.store.Get(context.Background(), store.KeyRefreshToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	}
}

// ============================================================================
// Token
// ============================================================================

func TestTokenRenewal(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fresh token is returned as is", func(t *testing.T) {
		t.Parallel()

		fresh := signedToken(t, now.Add(time.Hour))
		var calls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin(fresh, "rt-1"))
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
		})
		f := newFixture(t, mux)
		f.mgr.Now = func() time.Time { return now }

		signIn(t, f, fresh)
		require.Zero(t, calls.Load())
	})

	t.Run("token near expiry is renewed first", func(t *testing.T) {
		t.Parallel()

		stale := signedToken(t, now.Add(10*time.Second))
		fresh := signedToken(t, now.Add(time.Hour))

		var calls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin(stale, "rt-1"))
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusOK, authBody(fresh, "rt-2", "u1", apisdk.RoleAdmin))
		})
		f := newFixture(t, mux)
		f.mgr.Now = func() time.Time { return now }

		require.NoError(t, f.mgr.AdminSignIn(context.Background(), "awa@example.com", "secret"))

		token, err := f.mgr.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, fresh, token)
		require.Equal(t, int32(1), calls.Load())
		require.Equal(t, session.Authenticated, f.mgr.Snapshot().State)
	})

	t.Run("transient failure falls back to unexpired token", func(t *testing.T) {
		t.Parallel()

		stale := signedToken(t, now.Add(10*time.Second))
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin(stale, "rt-1"))
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadGateway, map[string]string{"message": "upstream down"})
		})
		f := newFixture(t, mux)
		f.mgr.Now = func() time.Time { return now }

		signIn(t, f, stale)
		require.Equal(t, session.Authenticated, f.mgr.Snapshot().State)

		stored, err := f.store.Get(context.Background(), store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-1", stored)
	})

	t.Run("transient failure with expired token", func(t *testing.T) {
		t.Parallel()

		expired := signedToken(t, now.Add(-time.Second))
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin(expired, "rt-1"))
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadGateway, map[string]string{"message": "upstream down"})
		})
		f := newFixture(t, mux)
		f.mgr.Now = func() time.Time { return now }

		require.NoError(t, f.mgr.AdminSignIn(context.Background(), "awa@example.com", "secret"))

		_, err := f.mgr.Token(context.Background())
		require.Error(t, err)
		require.Equal(t, session.Authenticated, f.mgr.Snapshot().State)
	})

	t.Run("rejected refresh token signs out", func(t *testing.T) {
		t.Parallel()

		stale := signedToken(t, now.Add(10*time.Second))
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin(stale, "rt-1"))
		mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Refresh token introuvable"})
		})
		f := newFixture(t, mux)
		f.mgr.Now = func() time.Time { return now }

		require.NoError(t, f.mgr.AdminSignIn(context.Background(), "awa@example.com", "secret"))

		_, err := f.mgr.Token(context.Background())
		require.ErrorIs(t, err, session.ErrNotAuthenticated)
		require.ErrorIs(t, err, session.ErrSessionExpired)
		require.Equal(t, session.Unauthenticated, f.mgr.Snapshot().State)
		require.Equal(t, []session.Route{session.RouteHome, session.RouteLogin}, f.routes.all())
	})

	t.Run("opaque token never renews", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin("opaque", "rt-1"))
		f := newFixture(t, mux)

		signIn(t, f, "opaque")
	})
}

func TestConcurrentRenewalSharesOneCall(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["refreshToken"] == "rt-1" {
			calls.Add(1)
		}
		<-release
		writeJSON(w, http.StatusOK, authBody("at-2", "rt-2", "u1", apisdk.RoleAdmin))
	})
	f := newFixture(t, mux)
	require.NoError(t, f.store.Set(context.Background(), store.KeyRefreshToken, "rt-1"))

	const callers = 8
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.mgr.Renew(context.Background())
		}()
	}

	// Give every caller time to join the in-flight renewal.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), calls.Load())

	stored, err := f.store.Get(context.Background(), store.KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "rt-2", stored)
}

func TestRenewalFinishingAfterSessionEnds(t *testing.T) {
	t.Parallel()

	// blockedRefresh answers the refresh call only once released.
	blockedRefresh := func(entered chan<- struct{}, release <-chan struct{}) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			entered <- struct{}{}
			<-release
			writeJSON(w, http.StatusOK, authBody("at-2", "rt-2", "u1", apisdk.RoleAdmin))
		}
	}

	t.Run("sign out wins", func(t *testing.T) {
		t.Parallel()

		entered, release := make(chan struct{}, 1), make(chan struct{})
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", adminLogin("at-1", "rt-1"))
		mux.HandleFunc("POST /users/refresh-token", blockedRefresh(entered, release))
		f := newFixture(t, mux)
		signIn(t, f, "at-1")

		done := make(chan error, 1)
		go func() { done <- f.mgr.Renew(context.Background()) }()

		<-entered
		require.NoError(t, f.mgr.SignOut(context.Background()))
		close(release)

		require.ErrorIs(t, <-done, session.ErrNotAuthenticated)

		snap := f.mgr.Snapshot()
		require.Equal(t, session.Unauthenticated, snap.State)
		require.Nil(t, snap.Identity)

		_, err := f.mgr.Token(context.Background())
		require.ErrorIs(t, err, session.ErrNotAuthenticated)

		_, err = f.store.Get(context.Background(), store.KeyRefreshToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("new sign in wins", func(t *testing.T) {
		t.Parallel()

		var logins atomic.Int32
		entered, release := make(chan struct{}, 1), make(chan struct{})
		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/admin/login", func(w http.ResponseWriter, _ *http.Request) {
			if logins.Add(1) == 1 {
				writeJSON(w, http.StatusOK, authBody("at-1", "rt-1", "u1", apisdk.RoleAdmin))
				return
			}
			writeJSON(w, http.StatusOK, authBody("at-3", "rt-3", "u1", apisdk.RoleAdmin))
		})
		mux.HandleFunc("POST /users/refresh-token", blockedRefresh(entered, release))
		f := newFixture(t, mux)
		signIn(t, f, "at-1")

		done := make(chan error, 1)
		go func() { done <- f.mgr.Renew(context.Background()) }()

		<-entered
		signIn(t, f, "at-3")
		close(release)

		require.NoError(t, <-done)

		got, err := f.mgr.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, "at-3", got)

		stored, err := f.store.Get(context.Background(), store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-3", stored)
	})
}

func TestRenewWithoutStoredToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t, http.NewServeMux())

	err := f.mgr.Renew(context.Background())
	require.ErrorIs(t, err, session.ErrSessionExpired)
	require.Equal(t, session.Unauthenticated, f.mgr.Snapshot().State)
}

func TestAPICallsCarryToken(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/admin/login", adminLogin("at-1", "rt-1"))
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.Header().Set("X-Total-Count", "0")
		writeJSON(w, http.StatusOK, []any{})
	})
	f := newFixture(t, mux)

	_, err := f.mgr.API().ListUsers(context.Background(), 1, 10)
	require.ErrorIs(t, err, session.ErrNotAuthenticated)

	signIn(t, f, "at-1")

	page, err := f.mgr.API().ListUsers(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Empty(t, page.Items)
}
