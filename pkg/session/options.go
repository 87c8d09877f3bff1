package session

import (
	"log/slog"

	"github.com/hajar-aswad/Learnzone/pkg/jwt"
)

// Option configures a Manager.
type Option func(*Manager)

func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithCodec replaces the token codec, mostly to inject a clock.
func WithCodec(codec *jwt.Codec) Option {
	return func(m *Manager) {
		if codec != nil {
			m.codec = codec
		}
	}
}

func WithAuthenticator(auth Authenticator) Option {
	return func(m *Manager) { m.auth = auth }
}

func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithErrorMessage sets how a failed login is turned into the text kept in
// Record.LastError.
func WithErrorMessage(fn func(error) string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.errorMessage = fn
		}
	}
}
