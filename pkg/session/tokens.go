package session

import (
	"context"
	"errors"
	"time"

	"github.com/hajar-aswad/Learnzone/pkg/cookie"
	"github.com/hajar-aswad/Learnzone/pkg/jwt"
)

// Storage keys.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

const (
	DefaultAccessTokenDays = 7
	RefreshTokenDays       = 30
	secondsPerDay          = 24 * 60 * 60
)

// Tokens is what the authentication endpoint hands out. ExpiresIn is in
// seconds; zero means the default access lifetime.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

func (m *Manager) accessLifetime(expiresIn int64) cookie.Option {
	if expiresIn > 0 {
		return cookie.WithExpires(float64(expiresIn) / secondsPerDay)
	}
	return cookie.WithExpires(m.config.AccessTokenDays)
}

// SaveTokens stores the access token and, when present, the refresh token.
func (m *Manager) SaveTokens(ctx context.Context, t Tokens) error {
	if err := m.SaveToken(ctx, t.AccessToken, t.ExpiresIn); err != nil {
		return err
	}
	if t.RefreshToken == "" {
		return nil
	}
	return m.SaveRefreshToken(ctx, t.RefreshToken)
}

// SaveToken stores only the access token. expiresIn is in seconds.
func (m *Manager) SaveToken(ctx context.Context, token string, expiresIn int64) error {
	if token == "" {
		return ErrEmptyToken
	}
	return m.access.Set(ctx, token, m.accessLifetime(expiresIn))
}

func (m *Manager) SaveRefreshToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return m.refresh.Set(ctx, token, cookie.WithExpires(m.config.RefreshTokenDays))
}

func readToken(ctx context.Context, item *cookie.Item[string]) (string, error) {
	token, err := item.Get(ctx)
	if errors.Is(err, cookie.ErrCookieNotFound) || (err == nil && token == "") {
		return "", ErrNoToken
	}
	return token, err
}

// Token returns the stored access token or ErrNoToken.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return readToken(ctx, m.access)
}

// RefreshToken returns the stored refresh token or ErrNoToken.
func (m *Manager) RefreshToken(ctx context.Context) (string, error) {
	return readToken(ctx, m.refresh)
}

// DestroyTokens removes both tokens. Calling it again is a no-op.
func (m *Manager) DestroyTokens(ctx context.Context) error {
	return errors.Join(m.access.Remove(ctx), m.refresh.Remove(ctx))
}

// IsAuthenticated reports whether a non-expired access token is stored.
// Store failures count as unauthenticated.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	token, err := m.Token(ctx)
	if err != nil {
		return false
	}
	return !m.codec.IsExpired(token)
}

// Payload decodes the stored access token.
func (m *Manager) Payload(ctx context.Context) (*jwt.Payload, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	return m.codec.Decode(token)
}

// UserID is the token subject.
func (m *Manager) UserID(ctx context.Context) (string, bool) {
	p, err := m.Payload(ctx)
	if err != nil || p.Subject == "" {
		return "", false
	}
	return p.Subject, true
}

// TokenExpiration is the exp claim of the stored access token.
func (m *Manager) TokenExpiration(ctx context.Context) (time.Time, bool) {
	token, err := m.Token(ctx)
	if err != nil {
		return time.Time{}, false
	}
	return m.codec.ExpiresAt(token)
}

// WillExpireSoon reports whether the access token expires within d. A token
// without a known expiry counts as expiring. d <= 0 uses the configured threshold.
func (m *Manager) WillExpireSoon(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		d = m.config.ExpiryThreshold
	}
	exp, ok := m.TokenExpiration(ctx)
	if !ok {
		return true
	}
	return exp.Sub(m.codec.Now()) <= d
}

// AuthorizationHeader returns "Bearer <token>" when a token is stored.
func (m *Manager) AuthorizationHeader(ctx context.Context) (string, bool) {
	token, err := m.Token(ctx)
	if err != nil {
		return "", false
	}
	return "Bearer " + token, true
}
