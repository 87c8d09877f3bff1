package learnzone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/cookie"
	"github.com/hajar-aswad/Learnzone/pkg/dashboard"
	"github.com/hajar-aswad/Learnzone/pkg/guard"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/query"
	"github.com/hajar-aswad/Learnzone/pkg/redis"
	"github.com/hajar-aswad/Learnzone/pkg/requestid"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// Client is the assembled admin client: session storage, the session
// manager, both API pipelines, the domain clients, the query cache and the
// route guard.
type Client struct {
	cfg       Config
	store     *cookie.Store
	session   *session.Manager
	pipeline  *apiclient.Client
	api       *api.Client
	stats     *api.Statistics
	cache     *query.Client
	dashboard *dashboard.Service
	guard     *guard.Guard
	user      *cookie.Item[session.User]
	log       *slog.Logger
	closers   []func() error
	probes    []func(context.Context) error
}

// New wires every component from cfg. Call Close when done.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.New(
			logger.WithConfig(cfg.Log),
			logger.WithContextExtractors(requestid.LoggerExtractor()),
		)
	}
	if o.notifier == nil {
		o.notifier = notify.NewLogNotifier(o.log)
	}

	c := &Client{cfg: cfg, log: o.log}

	backend, err := c.backend(ctx, o.backend)
	if err != nil {
		return nil, err
	}
	if c.store, err = cookie.NewFromConfig(cfg.Cookie, backend); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	c.user = cookie.NewItem[session.User](c.store, UserKey, nil)

	c.session, err = session.New(c.store,
		session.WithConfig(cfg.Session),
		session.WithLogger(o.log),
		session.WithAuthenticator(session.AuthenticatorFunc(func(ctx context.Context, creds session.Credentials) (*session.Authentication, error) {
			return c.api.Authenticate(ctx, creds)
		})),
		session.WithErrorMessage(func(err error) string { return apiclient.Message(err, "Login failed") }),
	)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	c.session.OnTransition(func(t session.Transition) {
		c.log.Debug("session changed",
			logger.Transition(string(t.From), string(t.To)),
			logger.Event(string(t.Event)))
	})

	c.cache = query.NewFromConfig(cfg.Query, query.WithLogger(o.log))
	c.closers = append(c.closers, c.cache.Close)

	// A 401 on an authenticated request ends the session locally as well.
	forcedLogout := apiclient.NavigatorFunc(func(ctx context.Context, path string) {
		c.session.Invalidate(ctx, session.EventUnauthorized)
		_ = c.user.Remove(ctx)
		c.cache.Clear()
		c.log.InfoContext(ctx, "session ended by server", logger.URL(path))
		if o.navigator != nil {
			o.navigator.Navigate(ctx, path)
		}
	})

	c.pipeline, err = apiclient.New(cfg.API,
		apiclient.WithLogger(o.log),
		apiclient.WithHTTPClient(o.httpClient),
		apiclient.WithBeforeSend(
			apiclient.RequestID(),
			apiclient.BearerToken(c.session, nil),
			apiclient.LogRequest(o.log),
		),
		apiclient.WithAfterReceive(
			apiclient.LogResponse(o.log),
			apiclient.AuthFailure(c.session, forcedLogout, cfg.LoginPath),
			apiclient.NotifyFailures(o.notifier),
		),
	)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	statsPipeline, err := apiclient.New(
		apiclient.Config{BaseURL: cfg.Statistics.BaseURL, Timeout: cfg.Statistics.Timeout, UserAgent: cfg.API.UserAgent},
		apiclient.WithLogger(o.log),
		apiclient.WithHTTPClient(o.httpClient),
		apiclient.WithBeforeSend(apiclient.RequestID(), apiclient.LogRequest(o.log)),
		apiclient.WithAfterReceive(apiclient.LogResponse(o.log), apiclient.NotifyFailures(o.notifier)),
	)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	endpoints, err := api.LoadEndpoints(cfg.EndpointsFile)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.api = api.New(c.pipeline,
		api.WithEndpoints(endpoints),
		api.WithNotifier(o.notifier),
		api.WithLogger(o.log),
	)
	c.stats = api.NewStatistics(statsPipeline, o.log)

	c.dashboard = dashboard.New(c.api, c.cache,
		dashboard.WithStatistics(c.stats),
		dashboard.WithSession(c.session),
		dashboard.WithNotifier(o.notifier),
		dashboard.WithLogger(o.log),
	)
	c.guard = guard.New(c.session,
		guard.WithLoginPath(cfg.LoginPath),
		guard.WithLogger(o.log),
	)
	return c, nil
}

func (c *Client) backend(ctx context.Context, override cookie.Backend) (cookie.Backend, error) {
	if override != nil {
		return override, nil
	}
	switch c.cfg.SessionBackend {
	case BackendFile, "":
		path := c.cfg.SessionFile
		if path == "" {
			path = DefaultSessionFile()
		}
		return cookie.NewFileBackend(path), nil
	case BackendMemory:
		b := cookie.NewMemoryBackend(time.Minute)
		c.closers = append(c.closers, b.Close)
		return b, nil
	case BackendRedis:
		rdb, err := redis.Connect(ctx, c.cfg.Redis)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, rdb.Close)
		c.probes = append(c.probes, redis.Healthcheck(rdb))
		return redis.NewCookieBackendFromConfig(rdb, c.cfg.Redis), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, c.cfg.SessionBackend)
}

// Close releases background workers and connections.
func (c *Client) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Healthcheck probes the external services the session depends on.
func (c *Client) Healthcheck(ctx context.Context) error {
	var errs []error
	for _, probe := range c.probes {
		errs = append(errs, probe(ctx))
	}
	return errors.Join(errs...)
}

// UserKey is the store entry holding the signed-in user between runs.
const UserKey = "user"

// Restore re-checks the stored session, e.g. at startup, and reloads the
// user saved by Login.
func (c *Client) Restore(ctx context.Context) bool {
	if !c.session.CheckAuth(ctx) {
		_ = c.user.Remove(ctx)
		return false
	}
	if u, err := c.user.Get(ctx); err == nil {
		c.session.SetUser(&u)
	}
	return true
}

// Login signs in through the dashboard and keeps the user for Restore.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.Result, error) {
	res, err := c.dashboard.Login(ctx, creds)
	if err != nil || !res.Success || res.User == nil {
		return res, err
	}
	if err := c.user.Set(ctx, *res.User, cookie.WithExpires(c.cfg.Session.AccessTokenDays)); err != nil {
		c.log.WarnContext(ctx, "save user failed", logger.Error(err))
	}
	return res, nil
}

// Logout ends the session and forgets the saved user.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.user.Remove(ctx); err != nil {
		c.log.WarnContext(ctx, "remove user failed", logger.Error(err))
	}
	return c.dashboard.Logout(ctx)
}

func (c *Client) Config() Config                { return c.cfg }
func (c *Client) Store() *cookie.Store          { return c.store }
func (c *Client) Session() *session.Manager     { return c.session }
func (c *Client) Pipeline() *apiclient.Client   { return c.pipeline }
func (c *Client) API() *api.Client              { return c.api }
func (c *Client) Statistics() *api.Statistics   { return c.stats }
func (c *Client) Cache() *query.Client          { return c.cache }
func (c *Client) Dashboard() *dashboard.Service { return c.dashboard }
func (c *Client) Guard() *guard.Guard           { return c.guard }
func (c *Client) Logger() *slog.Logger          { return c.log }
