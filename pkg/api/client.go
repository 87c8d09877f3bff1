package api

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

// Client groups the domain operations of the admin API on top of one
// request pipeline.
//
// Failures follow one policy. Every failure is shown to the user once: the
// pipeline notifies transport and server errors, the client notifies the
// ones it raises itself (validation). Writes always return the error. Reads of
// the teacher request family return an absent result and a nil error; every
// other read returns the error.
type Client struct {
	http      *apiclient.Client
	endpoints Endpoints
	notifier  notify.Notifier
	log       *slog.Logger
}

type Option func(*Client)

func WithEndpoints(e Endpoints) Option {
	return func(c *Client) { c.endpoints = e }
}

// WithNotifier sets where validation failures are shown.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
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

func New(pipeline *apiclient.Client, opts ...Option) *Client {
	c := &Client{
		http:      pipeline,
		endpoints: DefaultEndpoints(),
		notifier:  notify.Nop,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("api"))
	return c
}

// Endpoints returns the active route table.
func (c *Client) Endpoints() Endpoints { return c.endpoints }

func (c *Client) call(ctx context.Context, r Route, path string, body, out any) error {
	req, err := apiclient.NewRequest(ctx, r.Method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// fail reports err to the user unless the pipeline already did, and returns it.
func (c *Client) fail(ctx context.Context, op string, err error, fallback string) error {
	if !apiclient.IsPipelineError(err) {
		notify.Error(ctx, c.notifier, apiclient.Message(err, fallback))
	}
	c.log.DebugContext(ctx, "api call failed", slog.String("op", op), logger.Error(err))
	return err
}

// swallow reports err like fail and drops it.
func (c *Client) swallow(ctx context.Context, op string, err error, fallback string) {
	_ = c.fail(ctx, op, err, fallback)
}

// ParseID validates a resource identifier taken from user input: it must be
// present, numeric and positive.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if err := validator.Apply(
		validator.Required("id", raw),
	); err != nil {
		return 0, err
	}
	if err := validator.Apply(validator.Digits("id", raw)); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validator.ValidationErrors{{Field: "id", Message: "is out of range", Code: "validation.range"}}
	}
	if err := validateID(id); err != nil {
		return 0, err
	}
	return id, nil
}

func validateID(id int64) error {
	return validator.Apply(validator.Positive("id", id))
}
