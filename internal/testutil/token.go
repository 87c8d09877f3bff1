// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/cookie"
)

// Token signs claims with a throwaway HS256 key.
func Token(t testing.TB, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// TokenExpiringAt returns a token for sub with the given exp.
func TokenExpiringAt(t testing.TB, sub string, exp time.Time) string {
	t.Helper()
	return Token(t, jwtlib.MapClaims{
		"sub":  sub,
		"iat":  exp.Add(-time.Hour).Unix(),
		"exp":  exp.Unix(),
		"role": "Admin",
	})
}

// ValidToken expires a day from now.
func ValidToken(t testing.TB) string {
	t.Helper()
	return TokenExpiringAt(t, "1", time.Now().Add(24*time.Hour))
}

// ExpiredToken expired an hour ago.
func ExpiredToken(t testing.TB) string {
	t.Helper()
	return TokenExpiringAt(t, "1", time.Now().Add(-time.Hour))
}

// MemoryStore returns a cookie store over a fresh in-memory backend.
func MemoryStore(t testing.TB, opts ...cookie.Option) *cookie.Store {
	t.Helper()
	backend := cookie.NewMemoryBackend(0)
	t.Cleanup(func() { _ = backend.Close() })
	store, err := cookie.New(backend, opts...)
	require.NoError(t, err)
	return store
}
