package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hajar-aswad/Learnzone/pkg/cache"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
)

type entry struct {
	key           Key
	data          any
	hasData       bool
	updatedAt     time.Time
	invalidated   bool
	observers     int
	inactiveSince time.Time
	staleTime     time.Duration
	gcTime        time.Duration
}

// flight is one running fetch. A flight superseded by Invalidate, Remove or
// Clear does not write its result.
type flight struct {
	key        Key
	superseded bool
}

// State describes a cache entry at one instant.
type State struct {
	UpdatedAt time.Time
	HasData   bool
	Stale     bool
	Observers int
}

// Client is an in-memory query cache. Entries become stale after their stale
// time, are garbage collected once unobserved for their GC time, and are
// bounded by Config.MaxEntries.
type Client struct {
	cfg     Config
	mu      sync.Mutex
	entries *cache.LRU[string, *entry]
	group   singleflight.Group
	flights map[string]*flight
	now     func() time.Time
	log     *slog.Logger

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient creates a cache and starts its sweeper when
// Config.SweepInterval is positive. Call Close to stop it.
func NewClient(opts ...Option) *Client {
	c := &Client{
		cfg:     DefaultConfig(),
		now:     time.Now,
		log:     logger.Discard(),
		flights: make(map[string]*flight),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.MaxEntries <= 0 {
		c.cfg.MaxEntries = DefaultConfig().MaxEntries
	}
	c.log = c.log.With(logger.Component("query"))
	c.entries = cache.NewLRU[string, *entry](c.cfg.MaxEntries)
	c.entries.OnEvict(func(id string, _ *entry) {
		c.log.Debug("query evicted", logger.QueryKey(id))
	})

	if c.cfg.SweepInterval > 0 {
		c.stop = make(chan struct{})
		c.done = make(chan struct{})
		go c.sweep(c.cfg.SweepInterval)
	}
	return c
}

func NewFromConfig(cfg Config, opts ...Option) *Client {
	return NewClient(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Close stops the sweeper. The cache stays usable.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if c.stop != nil {
			close(c.stop)
			<-c.done
		}
	})
	return nil
}

func (c *Client) sweep(interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.GC()
		}
	}
}

func (c *Client) options(opts []QueryOption) queryOptions {
	o := queryOptions{
		staleTime:  c.cfg.StaleTime,
		gcTime:     c.cfg.GCTime,
		retry:      c.cfg.Retry,
		retryDelay: c.cfg.RetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Fetch returns the cached value for key while it is fresh. Otherwise it runs
// fn, retrying per the query options, and caches the result. Concurrent
// fetches of one key share a single call of fn, which runs with the first
// caller's context. Errors are never cached.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(context.Context) (T, error), opts ...QueryOption) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNoFetcher
	}
	o := c.options(opts)
	id := key.String()

	if v, ok := fresh[T](c, id, o.staleTime); ok {
		return v, nil
	}

	res, err, shared := c.group.Do(id, func() (any, error) {
		if v, ok := fresh[T](c, id, o.staleTime); ok {
			return v, nil
		}
		f := c.begin(key, id)
		defer c.end(id, f)
		v, err := run(ctx, fn, o)
		if err != nil {
			return nil, err
		}
		c.store(key, id, v, o, f)
		return v, nil
	})
	if err != nil {
		c.log.DebugContext(ctx, "query failed", logger.QueryKey(id), logger.Error(err))
		return zero, err
	}
	if shared {
		c.log.DebugContext(ctx, "query shared", logger.QueryKey(id))
	}
	if res == nil {
		return zero, nil
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, id, res)
	}
	return v, nil
}

func fresh[T any](c *Client, id string, staleTime time.Duration) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Get(id)
	if !ok || !e.hasData || e.invalidated || c.now().Sub(e.updatedAt) >= staleTime {
		return zero, false
	}
	v, ok := e.data.(T)
	return v, ok
}

func run[T any](ctx context.Context, fn func(context.Context) (T, error), o queryOptions) (T, error) {
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil || attempt >= o.retry || !retryable(ctx, err, o) {
			return v, err
		}
		if o.retryDelay > 0 {
			timer := time.NewTimer(o.retryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return v, err
			case <-timer.C:
			}
		}
	}
}

func retryable(ctx context.Context, err error, o queryOptions) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return o.retryIf == nil || o.retryIf(err)
}

func (c *Client) begin(key Key, id string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := &flight{key: key}
	c.flights[id] = f
	return f
}

func (c *Client) end(id string, f *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.flights[id] == f {
		delete(c.flights, id)
	}
}

// supersede stops in-flight fetches under prefix from writing and detaches
// them so later callers start a new fetch. c.mu must be held.
func (c *Client) supersede(prefix Key) {
	for id, f := range c.flights {
		if f.key.HasPrefix(prefix) {
			f.superseded = true
			delete(c.flights, id)
			c.group.Forget(id)
		}
	}
}

// store writes v unless f was superseded. Must not be called with c.mu held.
func (c *Client) store(key Key, id string, v any, o queryOptions, f *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f != nil && f.superseded {
		c.log.Debug("query result dropped", logger.QueryKey(id))
		return
	}
	now := c.now()
	e, ok := c.entries.Get(id)
	if !ok {
		e = &entry{key: key}
		c.entries.Put(id, e)
	}
	e.data, e.hasData, e.updatedAt, e.invalidated = v, true, now, false
	e.staleTime, e.gcTime = o.staleTime, o.gcTime
	if e.observers == 0 {
		e.inactiveSince = now
	}
}

// SetData writes v under key as freshly fetched.
func (c *Client) SetData(key Key, v any, opts ...QueryOption) {
	o := c.options(opts)
	c.store(key, key.String(), v, o, nil)
}

// Data returns the cached value for key regardless of staleness.
func Data[T any](c *Client, key Key) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Peek(key.String())
	if !ok || !e.hasData {
		return zero, false
	}
	v, ok := e.data.(T)
	return v, ok
}

// State reports the entry for key, if any.
func (c *Client) State(key Key) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Peek(key.String())
	if !ok {
		return State{}, false
	}
	return State{
		UpdatedAt: e.updatedAt,
		HasData:   e.hasData,
		Stale:     !e.hasData || e.invalidated || c.now().Sub(e.updatedAt) >= e.staleTime,
		Observers: e.observers,
	}, true
}

// Observe registers interest in key. While observed an entry is never
// garbage collected; its GC window starts when the last observer releases.
func (c *Client) Observe(key Key) (release func()) {
	id := key.String()

	c.mu.Lock()
	e, ok := c.entries.Get(id)
	if !ok {
		e = &entry{key: key, staleTime: c.cfg.StaleTime, gcTime: c.cfg.GCTime}
		c.entries.Put(id, e)
	}
	e.observers++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			e.observers--
			if e.observers == 0 {
				e.inactiveSince = c.now()
			}
		})
	}
}

// Invalidate marks every entry under prefix stale so the next Fetch refetches.
// Cached data stays readable through Data.
func (c *Client) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersede(prefix)
	n := 0
	c.entries.Range(func(_ string, e *entry) bool {
		if e.key.HasPrefix(prefix) {
			e.invalidated = true
			n++
		}
		return true
	})
	return n
}

// Remove drops every entry under prefix.
func (c *Client) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersede(prefix)
	return c.entries.RemoveFunc(func(_ string, e *entry) bool {
		return e.key.HasPrefix(prefix)
	})
}

// GC drops unobserved entries whose GC window has passed.
func (c *Client) GC() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	return c.entries.RemoveFunc(func(_ string, e *entry) bool {
		return e.observers == 0 && now.Sub(e.inactiveSince) >= e.gcTime
	})
}

func (c *Client) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersede(nil)
	c.entries.Clear()
}

func (c *Client) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
