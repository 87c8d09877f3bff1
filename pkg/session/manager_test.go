package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/internal/testutil"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

type transitions struct {
	mu   sync.Mutex
	seen []session.Transition
}

func (r *transitions) record(t session.Transition) {
	r.mu.Lock()
	r.seen = append(r.seen, t)
	r.mu.Unlock()
}

func (r *transitions) events() []session.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]session.Event, 0, len(r.seen))
	for _, t := range r.seen {
		out = append(out, t.Event)
	}
	return out
}

func authenticator(t *testing.T, user session.User, err error) session.Authenticator {
	token := testutil.ValidToken(t)
	return session.AuthenticatorFunc(func(ctx context.Context, creds session.Credentials) (*session.Authentication, error) {
		if err != nil {
			return nil, err
		}
		return &session.Authentication{Tokens: session.Tokens{AccessToken: token}, User: user}, nil
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := session.User{ID: 1, FirstName: "Hajar", Email: "admin@learnzone.io", Role: "Admin"}

	t.Run("success", func(t *testing.T) {
		var tr transitions
		m, _ := newManager(t, session.WithAuthenticator(authenticator(t, admin, nil)))
		m.OnTransition(tr.record)

		res := m.Login(ctx, session.Credentials{Email: admin.Email, Password: "secret"})
		require.True(t, res.Success)
		assert.Empty(t, res.Error)
		assert.Equal(t, admin, *res.User)

		snap := m.Snapshot()
		assert.True(t, snap.IsAuthenticated)
		assert.False(t, snap.Loading)
		assert.Empty(t, snap.LastError)
		assert.True(t, m.IsLoggedIn())
		assert.Equal(t, "Admin", m.UserRole())
		assert.Equal(t, session.StateAuthenticated, m.State())
		assert.True(t, m.IsAuthenticated(ctx))
		assert.Equal(t, []session.Event{session.EventLogin}, tr.events())

		// Snapshot is a copy.
		snap.User.Role = "Changed"
		assert.Equal(t, "Admin", m.CurrentUser().Role)
	})

	t.Run("failure never returns an error", func(t *testing.T) {
		m, _ := newManager(t, session.WithAuthenticator(authenticator(t, admin, errors.New("Invalid credentials"))))

		res := m.Login(ctx, session.Credentials{Email: "x@y.io", Password: "bad"})
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid credentials", res.Error)
		assert.Nil(t, res.User)

		snap := m.Snapshot()
		assert.False(t, snap.IsAuthenticated)
		assert.False(t, snap.Loading)
		assert.Equal(t, "Invalid credentials", snap.LastError)
		assert.Equal(t, session.StateAnonymous, m.State())
	})

	t.Run("custom error message", func(t *testing.T) {
		m, _ := newManager(t,
			session.WithAuthenticator(authenticator(t, admin, errors.New("raw"))),
			session.WithErrorMessage(func(error) string { return "Login failed" }),
		)
		assert.Equal(t, "Login failed", m.Login(ctx, session.Credentials{}).Error)
	})

	t.Run("no authenticator", func(t *testing.T) {
		m, _ := newManager(t)
		res := m.Login(ctx, session.Credentials{})
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("missing access token in response", func(t *testing.T) {
		auth := session.AuthenticatorFunc(func(context.Context, session.Credentials) (*session.Authentication, error) {
			return &session.Authentication{User: admin}, nil
		})
		m, _ := newManager(t, session.WithAuthenticator(auth))
		assert.False(t, m.Login(ctx, session.Credentials{}).Success)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tr transitions
	m, _ := newManager(t, session.WithAuthenticator(authenticator(t, session.User{ID: 2, Role: "Admin"}, nil)))
	m.OnTransition(tr.record)

	require.True(t, m.Login(ctx, session.Credentials{}).Success)
	require.NoError(t, m.SaveRefreshToken(ctx, "r"))
	m.SetError("stale")

	m.Logout(ctx)
	m.Logout(ctx)

	assert.Equal(t, session.Record{}, m.Snapshot())
	assert.False(t, m.IsAuthenticated(ctx))
	_, err := m.RefreshToken(ctx)
	assert.ErrorIs(t, err, session.ErrNoToken)
	assert.Equal(t, session.RoleGuest, m.UserRole())
	assert.Equal(t, []session.Event{session.EventLogin, session.EventLogout}, tr.events())
}

func TestCheckAuth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid token restores session", func(t *testing.T) {
		m, _ := newManager(t)
		require.NoError(t, m.SaveToken(ctx, testutil.ValidToken(t), 0))

		assert.True(t, m.CheckAuth(ctx))
		assert.True(t, m.Snapshot().IsAuthenticated)
		assert.False(t, m.IsLoggedIn(), "no user known yet")
		assert.Equal(t, session.StateAuthenticated, m.State())
	})

	t.Run("expired token", func(t *testing.T) {
		var tr transitions
		m, _ := newManager(t)
		m.OnTransition(tr.record)
		require.NoError(t, m.SaveToken(ctx, testutil.ValidToken(t), 0))
		require.True(t, m.CheckAuth(ctx))
		m.SetUser(&session.User{ID: 1})

		require.NoError(t, m.SaveToken(ctx, testutil.ExpiredToken(t), 0))
		assert.False(t, m.CheckAuth(ctx))
		assert.Nil(t, m.CurrentUser())
		assert.Equal(t, session.StateAnonymous, m.State())
		assert.Equal(t, []session.Event{session.EventLogin, session.EventExpire}, tr.events())
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no refresh token logs out", func(t *testing.T) {
		m, _ := newManager(t)
		require.NoError(t, m.SaveToken(ctx, testutil.ValidToken(t), 0))
		m.SetAuthenticated(true)

		assert.False(t, m.Refresh(ctx))
		assert.False(t, m.IsAuthenticated(ctx))
		assert.Equal(t, session.StateAnonymous, m.State())
	})

	t.Run("valid access token keeps session", func(t *testing.T) {
		m, _ := newManager(t)
		require.NoError(t, m.SaveTokens(ctx, session.Tokens{AccessToken: testutil.ValidToken(t), RefreshToken: "r"}))

		assert.True(t, m.Refresh(ctx))
		assert.True(t, m.Snapshot().IsAuthenticated)
	})

	t.Run("expired access token logs out", func(t *testing.T) {
		m, _ := newManager(t)
		require.NoError(t, m.SaveTokens(ctx, session.Tokens{AccessToken: testutil.ExpiredToken(t), RefreshToken: "r"}))

		assert.False(t, m.Refresh(ctx))
		_, err := m.RefreshToken(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})
}

func TestInvalidate_Unauthorized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tr transitions
	m, _ := newManager(t)
	m.OnTransition(tr.record)
	require.NoError(t, m.SaveTokens(ctx, session.Tokens{AccessToken: testutil.ValidToken(t), RefreshToken: "r"}))
	require.True(t, m.CheckAuth(ctx))

	m.Invalidate(ctx, session.EventUnauthorized)

	assert.False(t, m.IsAuthenticated(ctx))
	assert.Equal(t, session.StateAnonymous, m.State())
	assert.Equal(t, []session.Event{session.EventLogin, session.EventUnauthorized}, tr.events())
}

func TestRecordSetters(t *testing.T) {
	t.Parallel()

	m, _ := newManager(t)
	assert.Equal(t, session.RoleGuest, m.UserRole())

	u := &session.User{ID: 3, FirstName: "Sara", LastName: "Ali", Role: "Admin"}
	m.SetUser(u)
	u.Role = "mutated"
	assert.Equal(t, "Admin", m.UserRole())
	assert.Equal(t, "Sara Ali", m.CurrentUser().FullName())
	assert.False(t, m.IsLoggedIn())

	m.SetAuthenticated(true)
	assert.True(t, m.IsLoggedIn())
	assert.Equal(t, session.StateAuthenticated, m.State())

	m.SetError("boom")
	assert.Equal(t, "boom", m.Snapshot().LastError)
	m.ClearError()
	assert.Empty(t, m.Snapshot().LastError)

	m.SetUser(nil)
	assert.Nil(t, m.CurrentUser())
	m.SetAuthenticated(false)
	assert.Equal(t, session.StateAnonymous, m.State())
}
