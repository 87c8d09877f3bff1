package cookie

import (
	"context"
	"net/http"
	"time"
)

// Record is one stored value with its attributes.
type Record struct {
	Name      string        `json:"name"`
	Value     string        `json:"value"`
	Path      string        `json:"path,omitempty"`
	Domain    string        `json:"domain,omitempty"`
	Secure    bool          `json:"secure"`
	HttpOnly  bool          `json:"http_only"`
	SameSite  http.SameSite `json:"same_site"`
	ExpiresAt time.Time     `json:"expires_at,omitzero"`
	CreatedAt time.Time     `json:"created_at"`
}

func newRecord(name, value string, opts Options, now time.Time) Record {
	rec := Record{
		Name:      name,
		Value:     value,
		Path:      opts.Path,
		Domain:    opts.Domain,
		Secure:    opts.Secure,
		HttpOnly:  opts.HttpOnly,
		SameSite:  opts.SameSite,
		CreatedAt: now,
	}
	if lifetime := opts.Lifetime(); lifetime > 0 {
		rec.ExpiresAt = now.Add(lifetime)
	}
	return rec
}

// Expired reports whether the record is past its expiry at now.
func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// TTL returns the remaining lifetime at now; zero means unbounded.
func (r Record) TTL(now time.Time) time.Duration {
	if r.ExpiresAt.IsZero() {
		return 0
	}
	return r.ExpiresAt.Sub(now)
}

// HTTPCookie renders the record with its attributes for browser-facing handlers.
func (r Record) HTTPCookie() *http.Cookie {
	c := &http.Cookie{
		Name:     r.Name,
		Value:    r.Value,
		Path:     r.Path,
		Domain:   r.Domain,
		Secure:   r.Secure,
		HttpOnly: r.HttpOnly,
		SameSite: r.SameSite,
	}
	if !r.ExpiresAt.IsZero() {
		c.Expires = r.ExpiresAt
	}
	return c
}

// Backend persists records. Implementations must be safe for concurrent use.
type Backend interface {
	// Put stores or replaces a record.
	Put(ctx context.Context, rec Record) error
	// Fetch returns ErrCookieNotFound for missing records.
	Fetch(ctx context.Context, name string) (Record, error)
	// Delete is idempotent.
	Delete(ctx context.Context, name string) error
	// Names lists stored record names.
	Names(ctx context.Context) ([]string, error)
}
