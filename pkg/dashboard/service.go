package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/query"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// Service exposes the admin API through the query cache: reads are cached
// under the keys in this package and mutations keep those keys current.
type Service struct {
	api      *api.Client
	stats    *api.Statistics
	session  *session.Manager
	cache    *query.Client
	notifier notify.Notifier
	log      *slog.Logger
}

type Option func(*Service)

func WithStatistics(s *api.Statistics) Option {
	return func(svc *Service) { svc.stats = s }
}

// WithSession enables Login and Logout.
func WithSession(m *session.Manager) Option {
	return func(svc *Service) { svc.session = m }
}

// WithNotifier sets where success messages go.
func WithNotifier(n notify.Notifier) Option {
	return func(svc *Service) {
		if n != nil {
			svc.notifier = n
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(svc *Service) {
		if log != nil {
			svc.log = log
		}
	}
}

func New(client *api.Client, cache *query.Client, opts ...Option) *Service {
	s := &Service{
		api:      client,
		cache:    cache,
		notifier: notify.Nop,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("dashboard"))
	return s
}

// Cache returns the underlying query cache.
func (s *Service) Cache() *query.Client { return s.cache }

// Observe keeps key from being garbage collected until release is called.
func (s *Service) Observe(key query.Key) (release func()) {
	return s.cache.Observe(key)
}

func cached[T any](ctx context.Context, s *Service, key query.Key, w Window, fn func(context.Context) (T, error)) (T, error) {
	return query.Fetch(ctx, s.cache, key, fn, w.options()...)
}

// optional caches fn only when it yields a result. Reads that swallow their
// failures return an absent value, which must not be cached as data.
func optional[T any](ctx context.Context, s *Service, key query.Key, w Window, fn func(context.Context) (T, error), present func(T) bool) (T, error) {
	v, err := cached(ctx, s, key, w, func(ctx context.Context) (T, error) {
		v, err := fn(ctx)
		if err == nil && !present(v) {
			return v, errAbsent
		}
		return v, err
	})
	if errors.Is(err, errAbsent) {
		var zero T
		return zero, nil
	}
	return v, err
}

func notNil[T any](v *T) bool { return v != nil }

func notNilSlice[T any](v []T) bool { return v != nil }
