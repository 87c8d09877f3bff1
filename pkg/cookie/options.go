package cookie

import (
	"net/http"
	"time"
)

// DefaultExpiresDays is the lifetime applied when a write does not set one.
const DefaultExpiresDays = 7

// Options are the attributes stored alongside every value.
type Options struct {
	// Expires is the lifetime in days. Fractions are allowed; zero or less
	// means the value lives as long as the backend keeps it.
	Expires  float64
	Path     string
	Domain   string
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

type Option func(*Options)

// StrictOptions returns the attribute set every write starts from.
func StrictOptions() Options {
	return Options{
		Expires:  DefaultExpiresDays,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

func WithExpires(days float64) Option {
	return func(o *Options) {
		o.Expires = days
	}
}

// WithExpiresIn converts a duration into the day-based lifetime.
func WithExpiresIn(d time.Duration) Option {
	return func(o *Options) {
		o.Expires = d.Hours() / 24
	}
}

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// Lifetime returns the lifetime as a duration, zero when unbounded.
func (o Options) Lifetime() time.Duration {
	if o.Expires <= 0 {
		return 0
	}
	return time.Duration(o.Expires * float64(24*time.Hour))
}

// applyOptions creates a new Options struct by copying the base options
// and applying the provided option functions. The base options are not modified.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}
