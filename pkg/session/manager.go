package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hajar-aswad/Learnzone/pkg/cookie"
	"github.com/hajar-aswad/Learnzone/pkg/jwt"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
)

// Authentication is a successful login response.
type Authentication struct {
	Tokens Tokens
	User   User
}

// Authenticator exchanges credentials for tokens with the remote API.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Authentication, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, creds Credentials) (*Authentication, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, creds Credentials) (*Authentication, error) {
	return f(ctx, creds)
}

// Manager owns the stored tokens and the in-memory session record. All
// methods are safe for concurrent use.
type Manager struct {
	config       Config
	codec        *jwt.Codec
	auth         Authenticator
	log          *slog.Logger
	errorMessage func(error) string

	access  *cookie.Item[string]
	refresh *cookie.Item[string]

	mu      sync.RWMutex
	record  Record
	machine *machine
}

// New creates a Manager persisting tokens in store.
func New(store *cookie.Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	m := &Manager{
		config:       DefaultConfig(),
		codec:        jwt.NewCodec(),
		log:          logger.Discard(),
		errorMessage: defaultErrorMessage,
		access:       cookie.NewItem[string](store, AccessTokenKey, nil),
		refresh:      cookie.NewItem[string](store, RefreshTokenKey, nil),
		machine:      newMachine(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("session"))
	return m, nil
}

func defaultErrorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Login failed"
}

// State is the current lifecycle state.
func (m *Manager) State() State {
	return m.machine.state()
}

// OnTransition registers fn to run after every state change.
func (m *Manager) OnTransition(fn func(Transition)) {
	if fn != nil {
		m.machine.observe(fn)
	}
}

func (m *Manager) fire(ctx context.Context, ev Event) {
	if t, ok := m.machine.fire(ev); ok {
		m.log.DebugContext(ctx, "session state changed",
			logger.Event(string(ev)),
			logger.Transition(string(t.From), string(t.To)),
		)
	}
}

// Snapshot returns a copy of the session record.
func (m *Manager) Snapshot() Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record.clone()
}

func (m *Manager) update(fn func(r *Record)) {
	m.mu.Lock()
	fn(&m.record)
	m.mu.Unlock()
}

// Login authenticates and stores the access token. It never returns an
// error; failures are reported in the Result and kept in Record.LastError.
func (m *Manager) Login(ctx context.Context, creds Credentials) Result {
	m.update(func(r *Record) {
		r.Loading = true
		r.LastError = ""
	})

	auth, err := m.authenticate(ctx, creds)
	if err == nil {
		err = m.SaveTokens(ctx, auth.Tokens)
	}
	if err != nil {
		msg := m.errorMessage(err)
		m.update(func(r *Record) {
			r.LastError = msg
			r.Loading = false
			r.IsAuthenticated = false
		})
		m.log.InfoContext(ctx, "login failed", logger.Error(err))
		return Result{Error: msg, Cause: err}
	}

	user := auth.User
	m.update(func(r *Record) {
		r.User = &user
		r.IsAuthenticated = true
		r.Loading = false
	})
	m.fire(ctx, EventLogin)
	m.log.InfoContext(ctx, "logged in", logger.UserID(user.ID), logger.Role(user.Role))

	u := user
	return Result{Success: true, User: &u}
}

func (m *Manager) authenticate(ctx context.Context, creds Credentials) (*Authentication, error) {
	if m.auth == nil {
		return nil, ErrNoAuthenticator
	}
	auth, err := m.auth.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}
	if auth == nil || auth.Tokens.AccessToken == "" {
		return nil, ErrEmptyToken
	}
	return auth, nil
}

// Logout clears tokens and the session record. Local state is always
// cleared, even when the store fails.
func (m *Manager) Logout(ctx context.Context) {
	m.update(func(r *Record) { r.Loading = true })
	m.Invalidate(ctx, EventLogout)
}

// Invalidate ends the session for the given reason: tokens are destroyed,
// the record is reset and the state machine receives ev.
func (m *Manager) Invalidate(ctx context.Context, ev Event) {
	if err := m.DestroyTokens(ctx); err != nil {
		m.log.WarnContext(ctx, "destroy tokens failed", logger.Event(string(ev)), logger.Error(err))
	}
	m.update(func(r *Record) { *r = Record{} })
	m.fire(ctx, ev)
}

// CheckAuth re-derives the authenticated flag from the stored token. It does
// not call the network.
func (m *Manager) CheckAuth(ctx context.Context) bool {
	if !m.IsAuthenticated(ctx) {
		m.update(func(r *Record) {
			r.IsAuthenticated = false
			r.User = nil
		})
		m.fire(ctx, EventExpire)
		return false
	}
	m.update(func(r *Record) { r.IsAuthenticated = true })
	m.fire(ctx, EventLogin)
	return true
}

// Refresh keeps the session only while a refresh token is stored and the
// access token is still valid. No token exchange takes place.
func (m *Manager) Refresh(ctx context.Context) bool {
	if _, err := m.RefreshToken(ctx); err != nil {
		m.Logout(ctx)
		return false
	}
	if !m.IsAuthenticated(ctx) {
		m.Logout(ctx)
		return false
	}
	m.update(func(r *Record) { r.IsAuthenticated = true })
	return true
}

func (m *Manager) SetUser(u *User) {
	var cp *User
	if u != nil {
		v := *u
		cp = &v
	}
	m.update(func(r *Record) { r.User = cp })
}

// SetAuthenticated overrides the flag and moves the state machine with it.
func (m *Manager) SetAuthenticated(status bool) {
	m.update(func(r *Record) { r.IsAuthenticated = status })
	if status {
		m.fire(context.Background(), EventLogin)
	} else {
		m.fire(context.Background(), EventLogout)
	}
}

func (m *Manager) SetError(msg string) {
	m.update(func(r *Record) { r.LastError = msg })
}

func (m *Manager) ClearError() {
	m.SetError("")
}

// IsLoggedIn requires both the authenticated flag and a known user.
func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record.IsAuthenticated && m.record.User != nil
}

func (m *Manager) CurrentUser() *User {
	return m.Snapshot().User
}

// UserRole is the role of the current user, "guest" when unknown.
func (m *Manager) UserRole() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.record.User == nil || m.record.User.Role == "" {
		return RoleGuest
	}
	return m.record.User.Role
}

// RoleGuest is reported by UserRole when no user is known.
const RoleGuest = "guest"
