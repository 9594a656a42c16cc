package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
	"go.uber.org/zap"
)

type Status string

const (
	StatusLoading         Status = "loading"
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// Snapshot is an immutable view of the session handed to subscribers.
type Snapshot struct {
	Status Status
	User   *domain.User
}

// AuthAPI is what the manager needs from the auth client.
type AuthAPI interface {
	Login(ctx context.Context, payload request.LoginPayload) client.Result[client.AuthData]
	Register(ctx context.Context, payload request.RegisterPayload) client.Result[client.AuthData]
	Me(ctx context.Context) client.Result[domain.User]
	Logout(ctx context.Context, refreshToken string) client.Result[struct{}]
}

// Manager is the single source of truth for "who is logged in". The
// in-memory session is authoritative for rendering; the Store carries it
// across restarts until server verification completes.
type Manager struct {
	store *Store
	auth  AuthAPI

	mu      sync.Mutex
	status  Status
	session domain.Session
	subs    []func(Snapshot)
}

func NewManager(store *Store) *Manager {
	return &Manager{
		store:  store,
		status: StatusLoading,
	}
}

// SetAuth wires the auth client. Two-phase because the API client itself
// reads its bearer token from this manager.
func (m *Manager) SetAuth(auth AuthAPI) {
	m.auth = auth
}

// AccessToken implements client.TokenSource.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.AccessToken
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{Status: m.status}
	if m.session.User != nil {
		u := *m.session.User
		snap.User = &u
	}
	return snap
}

// Subscribe registers a callback invoked on every state change.
func (m *Manager) Subscribe(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) notify() {
	m.mu.Lock()
	snap := m.snapshotLocked()
	subs := make([]func(Snapshot), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Bootstrap restores the persisted session. When cached credentials exist
// the session turns authenticated immediately (optimistic load) while a
// "who am I" request verifies the token in the background; the returned
// channel closes once that verification has settled. An invalid token
// clears the session; a transient network failure keeps the cached one.
func (m *Manager) Bootstrap(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	cached, err := m.store.Load()
	if err != nil {
		zap.L().Warn("failed to load persisted session", zap.Error(err))
		cached = domain.Session{}
	}

	if cached.AccessToken == "" {
		m.clearLocal()
		close(done)
		return done
	}

	if cached.User != nil {
		m.mu.Lock()
		m.session = cached
		m.status = StatusAuthenticated
		m.mu.Unlock()
		m.notify()
	} else {
		// Token without a cached user record: stay in loading until the
		// verification call resolves.
		m.mu.Lock()
		m.session = cached
		m.mu.Unlock()
	}

	go func() {
		defer close(done)
		m.verify(ctx)
	}()

	return done
}

func (m *Manager) verify(ctx context.Context) {
	res := m.auth.Me(ctx)

	switch {
	case res.Success:
		m.mu.Lock()
		user := res.Data
		m.session.User = &user
		m.status = StatusAuthenticated
		sess := m.session
		m.mu.Unlock()

		if err := m.store.Save(sess); err != nil {
			zap.L().Warn("failed to persist refreshed session", zap.Error(err))
		}
		m.notify()

	case res.Status != 0:
		// The server answered and rejected the token.
		zap.L().Info("stored token rejected by server, clearing session")
		m.clearLocal()

	default:
		// Connectivity failure: availability wins over freshness, the
		// cached session stays. If we were still loading (no cached user),
		// there is nothing to show and the session ends unauthenticated.
		m.mu.Lock()
		stillLoading := m.status == StatusLoading
		m.mu.Unlock()
		if stillLoading {
			m.clearLocal()
		}
	}
}

// Login authenticates and persists the session. The returned error carries
// the human-readable message for the form banner; state is untouched on
// failure.
func (m *Manager) Login(ctx context.Context, payload request.LoginPayload) error {
	res := m.auth.Login(ctx, payload)
	if !res.Success {
		if res.Message != "" {
			return errors.New(res.Message)
		}
		return errors.New(client.MsgInvalidCredentials)
	}

	m.adopt(res.Data)
	return nil
}

// Register creates an account and logs in. Field-level validation errors
// from the server are concatenated into the returned message.
func (m *Manager) Register(ctx context.Context, payload request.RegisterPayload) error {
	res := m.auth.Register(ctx, payload)
	if !res.Success {
		if fieldErrs := res.FieldErrors(); fieldErrs != "" {
			return errors.New(fieldErrs)
		}
		if res.Message != "" {
			return errors.New(res.Message)
		}
		return errors.New(client.MsgRegisterFailed)
	}

	m.adopt(res.Data)
	return nil
}

func (m *Manager) adopt(data client.AuthData) {
	user := data.User
	sess := domain.Session{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		User:         &user,
	}

	m.mu.Lock()
	m.session = sess
	m.status = StatusAuthenticated
	m.mu.Unlock()

	if err := m.store.Save(sess); err != nil {
		zap.L().Warn("failed to persist session", zap.Error(err))
	}
	m.notify()
}

// Logout tells the server to invalidate the refresh token (best effort),
// then unconditionally clears local state.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	refreshToken := m.session.RefreshToken
	m.mu.Unlock()

	if refreshToken != "" {
		if res := m.auth.Logout(ctx, refreshToken); !res.Success {
			zap.L().Debug("server-side logout failed", zap.String("message", res.Message))
		}
	}

	m.clearLocal()
}

func (m *Manager) clearLocal() {
	m.mu.Lock()
	m.session = domain.Session{}
	m.status = StatusUnauthenticated
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		zap.L().Warn("failed to clear persisted session", zap.Error(err))
	}
	m.notify()
}

// UpdateUser replaces the user record after a profile edit, in memory and
// on disk.
func (m *Manager) UpdateUser(user domain.User) {
	m.mu.Lock()
	m.session.User = &user
	sess := m.session
	m.mu.Unlock()

	if err := m.store.Save(sess); err != nil {
		zap.L().Warn("failed to persist session", zap.Error(err))
	}
	m.notify()
}

// TokenExpiry reads the exp claim of the stored access token without
// verifying the signature (verification is the server's job). ok is false
// when no token is held or it carries no expiry.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	m.mu.Lock()
	token := m.session.AccessToken
	m.mu.Unlock()

	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
