package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request is one logical API call. It survives across sends, so the retry
// guard set by a failure hook is still visible if the caller sends it again.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte

	ctx     context.Context
	retried bool
	sentAt  time.Time
}

// NewRequest builds a request. A non-nil body is encoded as JSON.
func NewRequest(ctx context.Context, method, path string, body any) (*Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r := &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
		ctx:    ctx,
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		r.Body = data
	}
	return r, nil
}

func (r *Request) Context() context.Context {
	return r.ctx
}

// SetContext replaces the request context, e.g. to add a request id.
func (r *Request) SetContext(ctx context.Context) {
	if ctx != nil {
		r.ctx = ctx
	}
}

// Retried reports whether a failure hook already handled this request once.
func (r *Request) Retried() bool {
	return r.retried
}

func (r *Request) MarkRetried() {
	r.retried = true
}

// SentAt is when the request last left the client.
func (r *Request) SentAt() time.Time {
	return r.sentAt
}

func (r *Request) httpRequest(base *url.URL) (*http.Request, error) {
	ref, err := url.Parse(strings.TrimPrefix(r.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", r.Path, err)
	}
	u := base.ResolveReference(ref)
	if len(r.Query) > 0 {
		q := u.Query()
		for k, vs := range r.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(r.ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.Header {
		req.Header[k] = append([]string(nil), vs...)
	}
	return req, nil
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// Decode unmarshals the JSON body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if out == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}
