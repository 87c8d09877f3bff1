package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/internal/testutil"
	"github.com/hajar-aswad/Learnzone/pkg/cookie"
	"github.com/hajar-aswad/Learnzone/pkg/jwt"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

func newManager(t *testing.T, opts ...session.Option) (*session.Manager, *cookie.Store) {
	t.Helper()
	store := testutil.MemoryStore(t)
	m, err := session.New(store, opts...)
	require.NoError(t, err)
	return m, store
}

func TestNew_RequiresStore(t *testing.T) {
	t.Parallel()
	_, err := session.New(nil)
	assert.ErrorIs(t, err, session.ErrNoStore)
}

func TestSaveTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("expiresIn converts seconds to days", func(t *testing.T) {
		m, store := newManager(t)
		now := time.Now()
		store.WithClock(func() time.Time { return now })
		token := testutil.ValidToken(t)

		require.NoError(t, m.SaveTokens(ctx, session.Tokens{AccessToken: token, ExpiresIn: 3600}))

		got, err := m.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, token, got)

		rec, err := store.Lookup(ctx, session.AccessTokenKey)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(time.Hour), rec.ExpiresAt, time.Second)
		assert.True(t, rec.Secure)
		assert.Equal(t, "/", rec.Path)

		_, err = m.RefreshToken(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("defaults", func(t *testing.T) {
		m, store := newManager(t)
		now := time.Now()
		store.WithClock(func() time.Time { return now })

		require.NoError(t, m.SaveTokens(ctx, session.Tokens{AccessToken: "a.b.c", RefreshToken: "r"}))

		access, err := store.Lookup(ctx, session.AccessTokenKey)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(7*24*time.Hour), access.ExpiresAt, time.Second)

		refresh, err := store.Lookup(ctx, session.RefreshTokenKey)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(30*24*time.Hour), refresh.ExpiresAt, time.Second)

		got, err := m.RefreshToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "r", got)
	})

	t.Run("empty token", func(t *testing.T) {
		m, _ := newManager(t)
		assert.ErrorIs(t, m.SaveTokens(ctx, session.Tokens{}), session.ErrEmptyToken)
		assert.ErrorIs(t, m.SaveRefreshToken(ctx, ""), session.ErrEmptyToken)
	})
}

func TestDestroyTokens_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.SaveTokens(ctx, session.Tokens{AccessToken: "a.b.c", RefreshToken: "r"}))
	require.NoError(t, m.DestroyTokens(ctx))
	require.NoError(t, m.DestroyTokens(ctx))

	_, err := m.Token(ctx)
	assert.ErrorIs(t, err, session.ErrNoToken)
	_, err = m.RefreshToken(ctx)
	assert.ErrorIs(t, err, session.ErrNoToken)
}

func TestIsAuthenticated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid", testutil.ValidToken(t), true},
		{"expired", testutil.ExpiredToken(t), false},
		{"malformed", "not-a-token", false},
		{"bad encoding", "a.%%%.c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newManager(t)
			require.NoError(t, m.SaveToken(ctx, tt.token, 0))
			assert.Equal(t, tt.want, m.IsAuthenticated(ctx))
		})
	}

	t.Run("no token", func(t *testing.T) {
		m, _ := newManager(t)
		assert.False(t, m.IsAuthenticated(ctx))
	})
}

func TestLegacyPlainToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, store := newManager(t)

	token := testutil.ValidToken(t)
	require.NoError(t, store.SetRaw(ctx, session.AccessTokenKey, token))

	got, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.True(t, m.IsAuthenticated(ctx))
}

func TestDerivedClaims(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := jwt.NewCodec(jwt.WithClock(func() time.Time { return now }))

	t.Run("user id and expiration", func(t *testing.T) {
		m, _ := newManager(t, session.WithCodec(codec))
		exp := now.Add(30 * time.Minute)
		token := testutil.TokenExpiringAt(t, "42", exp)
		require.NoError(t, m.SaveToken(ctx, token, 0))

		id, ok := m.UserID(ctx)
		require.True(t, ok)
		assert.Equal(t, "42", id)

		got, ok := m.TokenExpiration(ctx)
		require.True(t, ok)
		assert.True(t, got.Equal(exp))

		header, ok := m.AuthorizationHeader(ctx)
		require.True(t, ok)
		assert.Equal(t, "Bearer "+token, header)

		payload, err := m.Payload(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Admin", payload.Role)
	})

	t.Run("will expire soon", func(t *testing.T) {
		m, _ := newManager(t, session.WithCodec(codec))

		require.NoError(t, m.SaveToken(ctx, testutil.TokenExpiringAt(t, "1", now.Add(3*time.Minute)), 0))
		assert.True(t, m.WillExpireSoon(ctx, 5*time.Minute))
		assert.True(t, m.WillExpireSoon(ctx, 0))

		require.NoError(t, m.SaveToken(ctx, testutil.TokenExpiringAt(t, "1", now.Add(30*time.Minute)), 0))
		assert.False(t, m.WillExpireSoon(ctx, 5*time.Minute))
	})

	t.Run("absent", func(t *testing.T) {
		m, _ := newManager(t, session.WithCodec(codec))

		_, ok := m.UserID(ctx)
		assert.False(t, ok)
		_, ok = m.TokenExpiration(ctx)
		assert.False(t, ok)
		_, ok = m.AuthorizationHeader(ctx)
		assert.False(t, ok)
		assert.True(t, m.WillExpireSoon(ctx, time.Minute))
	})
}
