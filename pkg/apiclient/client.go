package apiclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hajar-aswad/Learnzone/pkg/logger"
)

// maxBodySize caps how much of a response is read; file downloads included.
const maxBodySize = 32 << 20

// BeforeSend runs before a request leaves the client. A returned error aborts
// the request and is passed to the AfterReceive hooks.
type BeforeSend func(req *Request) error

// AfterReceive observes every outcome. resp is nil when no response arrived.
// Hooks cannot change the error returned to the caller.
type AfterReceive func(req *Request, resp *Response, err error)

// Client is the single outbound channel to one API.
type Client struct {
	base    *url.URL
	http    *http.Client
	headers http.Header
	before  []BeforeSend
	after   []AfterReceive
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sends requests through a copy of hc, so one client can back
// several pipelines. The configured timeout is kept unless hc sets its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = c.http.Timeout
		}
		c.http = &cp
	}
}

func WithBeforeSend(hooks ...BeforeSend) Option {
	return func(c *Client) { c.Use(hooks...) }
}

func WithAfterReceive(hooks ...AfterReceive) Option {
	return func(c *Client) { c.OnResponse(hooks...) }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New creates a client for cfg.BaseURL with JSON default headers.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}

	c := &Client{
		base: base,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		headers: http.Header{},
		log:     logger.Discard(),
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		c.headers.Set("User-Agent", cfg.UserAgent)
	}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("apiclient"))
	return c, nil
}

// BaseURL returns the resolved base address.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Use appends before-send hooks. Hooks run in registration order.
func (c *Client) Use(hooks ...BeforeSend) {
	for _, h := range hooks {
		if h != nil {
			c.before = append(c.before, h)
		}
	}
}

// OnResponse appends after-receive hooks. Hooks run in registration order.
func (c *Client) OnResponse(hooks ...AfterReceive) {
	for _, h := range hooks {
		if h != nil {
			c.after = append(c.after, h)
		}
	}
}

// Do sends req through the hook chain. Non-2xx responses are returned as
// *ServerError, network failures as *TransportError. The error reaching the
// caller is always the one the hooks saw.
func (c *Client) Do(req *Request) (*Response, error) {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	for k, vs := range c.headers {
		if req.Header.Get(k) == "" {
			req.Header[k] = append([]string(nil), vs...)
		}
	}

	resp, err := c.send(req)
	for _, h := range c.after {
		h(req, resp, err)
	}
	return resp, err
}

func (c *Client) send(req *Request) (*Response, error) {
	for _, h := range c.before {
		if err := h(req); err != nil {
			return nil, err
		}
	}

	hreq, err := req.httpRequest(c.base)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.Path, Err: err}
	}

	req.sentAt = time.Now()
	hresp, err := c.http.Do(hreq)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: hreq.URL.String(), Err: err}
	}
	defer func() { _ = hresp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(hresp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: hreq.URL.String(), Err: err}
	}

	resp := &Response{
		StatusCode: hresp.StatusCode,
		Header:     hresp.Header,
		Body:       body,
		Duration:   time.Since(req.sentAt),
	}
	if hresp.StatusCode < 200 || hresp.StatusCode > 299 {
		return resp, &ServerError{
			Method:  req.Method,
			URL:     hreq.URL.String(),
			Status:  hresp.StatusCode,
			Message: serverMessage(body),
			Body:    body,
		}
	}
	return resp, nil
}

// Send builds a request, sends it and decodes the JSON response into out.
func (c *Client) Send(ctx context.Context, method, path string, body, out any) error {
	req, err := NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodDelete, path, nil, out)
}

// Download fetches a binary body, e.g. an uploaded certificate.
func (c *Client) Download(ctx context.Context, path string) (*Response, error) {
	req, err := NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")
	return c.Do(req)
}
