package query

import (
	"log/slog"
	"time"
)

type Option func(*Client)

func WithConfig(cfg Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// QueryOption overrides client defaults for one query.
type QueryOption func(*queryOptions)

type queryOptions struct {
	staleTime  time.Duration
	gcTime     time.Duration
	retry      int
	retryDelay time.Duration
	retryIf    func(error) bool
}

func StaleTime(d time.Duration) QueryOption {
	return func(o *queryOptions) { o.staleTime = d }
}

func GCTime(d time.Duration) QueryOption {
	return func(o *queryOptions) { o.gcTime = d }
}

// Retry sets how many times a failed fetch is repeated.
func Retry(n int) QueryOption {
	return func(o *queryOptions) { o.retry = max(n, 0) }
}

func RetryDelay(d time.Duration) QueryOption {
	return func(o *queryOptions) { o.retryDelay = d }
}

// RetryIf limits retries to errors for which fn returns true.
func RetryIf(fn func(error) bool) QueryOption {
	return func(o *queryOptions) { o.retryIf = fn }
}
