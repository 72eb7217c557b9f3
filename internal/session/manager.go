// Package session owns the console operator's authentication lifecycle.
//
// A Manager holds the identity and access token in memory, keeps the refresh
// token in a durable store, and hands out the access token to every
// authenticated backend call through apisdk.TokenSource. Renewal happens on
// startup, ahead of expiry, and on demand; concurrent renewals collapse into
// a single backend call because the backend rotates the refresh token on
// every use.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/jwtx"
	"golang.org/x/sync/singleflight"
)

// Backend is the subset of the SDK client the manager drives.
type Backend interface {
	Login(ctx context.Context, email, password string) (*apisdk.AuthResponse, error)
	AdminLogin(ctx context.Context, email, password string) (*apisdk.AuthResponse, error)
	Register(ctx context.Context, req apisdk.RegisterRequest) (*apisdk.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*apisdk.AuthResponse, error)
	Authorized(tokens apisdk.TokenSource) *apisdk.Authorized
}

type Manager struct {
	Backend   Backend
	Store     store.Store
	Navigator Navigator
	Logger    *slog.Logger

	// RenewBuffer is how close to expiry a token may get before Token renews
	// it first.
	RenewBuffer time.Duration

	// Now is the clock, swapped in tests.
	Now func() time.Time

	api     *apisdk.Authorized
	renewal singleflight.Group

	// writes serializes every change to the stored and published
	// credentials. generation counts sign-ins and sign-outs so a renewal
	// started before one of them is discarded instead of applied.
	writes     sync.Mutex
	generation uint64

	mu          sync.RWMutex
	state       State
	identity    *apisdk.User
	accessToken string
	loading     bool
}

// New creates a manager in the Initializing state. Call Init once at
// process start.
func New(backend Backend, st store.Store, nav Navigator, logger *slog.Logger) *Manager {
	if nav == nil {
		nav = nopNavigator{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		Backend:     backend,
		Store:       st,
		Navigator:   nav,
		Logger:      logger,
		RenewBuffer: jwtx.DefaultRenewBuffer,
		Now:         time.Now,
		state:       Initializing,
	}
	m.api = backend.Authorized(m)
	return m
}

// API returns the authenticated backend client bound to this session.
func (m *Manager) API() *apisdk.Authorized { return m.api }

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{State: m.state, Loading: m.loading}
	if m.identity != nil {
		u := *m.identity
		snap.Identity = &u
	}
	return snap
}

// ============================================================================
// Lifecycle
// ============================================================================

// Init redeems the persisted refresh token, if any. Without one the session
// becomes Unauthenticated and the operator is sent to the login screen.
// A transient failure leaves the stored token in place for the next attempt
// and is returned after being logged.
func (m *Manager) Init(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	gen := m.currentGeneration()
	refreshToken, err := m.Store.Get(ctx, store.KeyRefreshToken)
	switch {
	case errors.Is(err, store.ErrNotFound):
		m.Logger.Info("no refresh token stored")
		m.setState(Unauthenticated)
		m.Navigator.Navigate(RouteLogin)
		return nil
	case err != nil:
		// Unreadable slot (e.g. the master key changed). It will never
		// become readable again, so start over.
		m.Logger.Warn("refresh token slot unreadable, clearing", "error", err)
		m.forceLogout(ctx)
		return nil
	}

	err = m.redeem(ctx, gen, refreshToken)
	switch {
	case err == nil:
		m.Navigator.Navigate(RouteHome)
		return nil
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrNotAuthenticated):
		return nil
	default:
		return err
	}
}

// Renew trades the stored refresh token for a fresh access token, identity
// and rotated refresh token. If the backend no longer knows the refresh
// token the session is cleared and ErrSessionExpired returned. Any other
// failure leaves credentials untouched.
func (m *Manager) Renew(ctx context.Context) error {
	gen := m.currentGeneration()
	refreshToken, err := m.Store.Get(ctx, store.KeyRefreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.Logger.Warn("renewal requested without a stored refresh token")
			m.forceLogout(ctx)
			return ErrSessionExpired
		}
		return fmt.Errorf("read refresh token: %w", err)
	}

	return m.redeem(ctx, gen, refreshToken)
}

// redeem runs one renewal and applies its outcome to the state machine. gen
// is the session generation the refresh token was read under.
func (m *Manager) redeem(ctx context.Context, gen uint64, refreshToken string) error {
	m.mu.Lock()
	prev := m.state
	if prev == Authenticated {
		m.state = Renewing
	}
	m.mu.Unlock()

	// Callers racing on the same refresh token share one request, and the
	// outcome is applied inside it so every caller sees it on return. The
	// shared call must not die with whichever caller cancels first.
	_, err, shared := m.renewal.Do(refreshToken, func() (any, error) {
		ctx := context.WithoutCancel(ctx)

		resp, err := m.Backend.RefreshToken(ctx, refreshToken)
		switch {
		case err == nil:
			return resp, m.applyRenewal(ctx, gen, resp)

		case isInvalidation(err):
			m.Logger.Info("refresh token rejected, signing out", "status", apisdk.StatusCode(err))
			if err := m.expire(ctx, gen); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)

		default:
			m.Logger.Error("session renewal failed", "error", err)
			return nil, fmt.Errorf("renew session: %w", err)
		}
	})
	if shared {
		m.Logger.Debug("joined in-flight renewal")
	}
	if errors.Is(err, errSessionReplaced) {
		if m.Snapshot().Authenticated() {
			return nil
		}
		return ErrNotAuthenticated
	}
	if err == nil || errors.Is(err, ErrSessionExpired) {
		return err
	}

	// Transient failure: credentials stay as they were
	m.mu.Lock()
	switch {
	case m.accessToken != "":
		m.state = Authenticated
	case prev == Initializing:
		m.state = Unauthenticated
	default:
		m.state = prev
	}
	m.mu.Unlock()
	return err
}

// Token implements apisdk.TokenSource. It is the only way anything outside
// this package obtains the access token. A token about to expire is renewed
// first; if that renewal fails transiently the current token is returned as
// long as it has not actually expired.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	token := m.accessToken
	m.mu.RUnlock()

	if token == "" {
		return "", ErrNotAuthenticated
	}

	now := m.Now()
	if !jwtx.NeedsRenewal(token, m.RenewBuffer, now) {
		return token, nil
	}

	if err := m.Renew(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return "", err
		}
		if errors.Is(err, ErrSessionExpired) {
			return "", errors.Join(ErrNotAuthenticated, err)
		}
		if !jwtx.NeedsRenewal(token, 0, now) {
			return token, nil
		}
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.accessToken == "" {
		return "", ErrNotAuthenticated
	}
	return m.accessToken, nil
}

// ============================================================================
// Sign in / out
// ============================================================================

// SignIn authenticates through the general login route.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.Backend.Login(ctx, email, password)
	if err != nil {
		return mapLoginError(err)
	}

	if err := m.establish(ctx, resp); err != nil {
		return err
	}
	m.Navigator.Navigate(RouteHome)
	return nil
}

// AdminSignIn authenticates through the admin login route and refuses any
// identity whose role is not admin. A refused identity leaves no trace: no
// storage write and no state change.
func (m *Manager) AdminSignIn(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.Backend.AdminLogin(ctx, email, password)
	if err != nil {
		return mapLoginError(err)
	}

	if !resp.User.IsAdmin() {
		m.Logger.Warn("non-admin sign-in refused", "user_id", resp.User.Key(), "role", resp.User.Role)
		return ErrAccessDenied
	}

	if err := m.establish(ctx, resp); err != nil {
		return err
	}
	m.Navigator.Navigate(RouteHome)
	return nil
}

// SignUp registers a new account and signs it in.
func (m *Manager) SignUp(ctx context.Context, req apisdk.RegisterRequest) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.Backend.Register(ctx, req)
	if err != nil {
		if errors.Is(err, apisdk.ErrNetwork) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrRegistration, err)
	}

	if err := m.establish(ctx, resp); err != nil {
		return err
	}
	m.Navigator.Navigate(RouteHome)
	return nil
}

// SignOut forgets the session locally. It is idempotent.
func (m *Manager) SignOut(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	m.forceLogout(ctx)
	return nil
}

// establish persists the refresh token, then publishes identity and token.
// Nothing is published if the refresh token cannot be persisted.
func (m *Manager) establish(ctx context.Context, resp *apisdk.AuthResponse) error {
	m.writes.Lock()
	defer m.writes.Unlock()

	m.bumpGeneration()
	if err := m.Store.Set(ctx, store.KeyRefreshToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("persist refresh token: %w", err)
	}

	m.setCredentials(resp.User, resp.Token)
	m.Logger.Info("signed in", "user_id", resp.User.Key(), "role", resp.User.Role)
	return nil
}

// applyRenewal persists and publishes a renewal outcome unless the session
// was signed out or replaced since gen was read.
func (m *Manager) applyRenewal(ctx context.Context, gen uint64, resp *apisdk.AuthResponse) error {
	m.writes.Lock()
	defer m.writes.Unlock()

	if m.currentGeneration() != gen {
		m.Logger.Info("discarding renewal for a session that ended", "user_id", resp.User.Key())
		return errSessionReplaced
	}

	if err := m.Store.Set(ctx, store.KeyRefreshToken, resp.RefreshToken); err != nil {
		m.Logger.Error("failed to persist rotated refresh token", "error", err)
	}
	m.setCredentials(resp.User, resp.Token)
	m.Logger.Info("session renewed", "user_id", resp.User.Key())
	return nil
}

// forceLogout clears storage and memory, then sends the operator to login.
func (m *Manager) forceLogout(ctx context.Context) {
	m.writes.Lock()
	m.clearCredentials(ctx)
	m.writes.Unlock()

	m.Navigator.Navigate(RouteLogin)
}

// expire is forceLogout for a rejected renewal. A session that was signed
// out or replaced while the renewal ran is left alone.
func (m *Manager) expire(ctx context.Context, gen uint64) error {
	m.writes.Lock()
	if m.currentGeneration() != gen {
		m.writes.Unlock()
		return errSessionReplaced
	}
	m.clearCredentials(ctx)
	m.writes.Unlock()

	m.Navigator.Navigate(RouteLogin)
	return nil
}

// clearCredentials must be called with writes held.
func (m *Manager) clearCredentials(ctx context.Context) {
	m.bumpGeneration()
	if err := m.Store.Delete(ctx, store.KeyRefreshToken); err != nil {
		m.Logger.Error("failed to clear refresh token", "error", err)
	}

	m.mu.Lock()
	m.identity = nil
	m.accessToken = ""
	m.state = Unauthenticated
	m.mu.Unlock()
}

func mapLoginError(err error) error {
	switch {
	case errors.Is(err, apisdk.ErrNetwork):
		return err
	case isClientError(err):
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, apisdk.Message(err))
	default:
		return err
	}
}

// ============================================================================
// State helpers
// ============================================================================

// setCredentials publishes identity and token together.
func (m *Manager) setCredentials(user *apisdk.User, token string) {
	u := *user

	m.mu.Lock()
	m.identity = &u
	m.accessToken = token
	m.state = Authenticated
	m.mu.Unlock()
}

func (m *Manager) currentGeneration() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

func (m *Manager) bumpGeneration() {
	m.mu.Lock()
	m.generation++
	m.mu.Unlock()
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// currentIdentity returns a copy of the identity or ErrNotAuthenticated.
func (m *Manager) currentIdentity() (apisdk.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.identity == nil {
		return apisdk.User{}, ErrNotAuthenticated
	}
	return *m.identity, nil
}

// replaceIdentity swaps the identity if the session still belongs to id.
func (m *Manager) replaceIdentity(id string, u apisdk.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.identity == nil || m.identity.Key() != id {
		return
	}
	m.identity = &u
}
