package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/internal/testutil"
	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/requestid"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

type fakeTokens struct {
	access     string
	refresh    string
	refreshErr error
	destroyed  atomic.Int32
}

func (f *fakeTokens) Token(context.Context) (string, error) {
	if f.access == "" {
		return "", session.ErrNoToken
	}
	return f.access, nil
}

func (f *fakeTokens) RefreshToken(context.Context) (string, error) {
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	if f.refresh == "" {
		return "", session.ErrNoToken
	}
	return f.refresh, nil
}

func (f *fakeTokens) DestroyTokens(context.Context) error {
	f.destroyed.Add(1)
	f.access, f.refresh = "", ""
	return nil
}

type navigations struct {
	paths []string
}

func (n *navigations) Navigate(_ context.Context, path string) {
	n.paths = append(n.paths, path)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	var got []string
	srv := newServer(t, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			got = append(got, r.Header.Get("Authorization"))
		})
	})

	valid := testutil.ValidToken(t)
	tokens := &fakeTokens{access: valid}
	c := newClient(t, srv.URL, apiclient.WithBeforeSend(apiclient.BearerToken(tokens, nil)))
	ctx := context.Background()

	require.NoError(t, c.Get(ctx, "/", nil))
	tokens.access = testutil.ExpiredToken(t)
	require.NoError(t, c.Get(ctx, "/", nil))
	tokens.access = ""
	require.NoError(t, c.Get(ctx, "/", nil))

	assert.Equal(t, []string{"Bearer " + valid, "", ""}, got)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var got string
	srv := newServer(t, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get(requestid.Header)
		})
	})
	c := newClient(t, srv.URL, apiclient.WithBeforeSend(apiclient.RequestID()))

	require.NoError(t, c.Get(requestid.WithContext(context.Background(), "rid-1"), "/", nil))
	assert.Equal(t, "rid-1", got)

	require.NoError(t, c.Get(context.Background(), "/", nil))
	assert.True(t, requestid.Valid(got))
	assert.NotEqual(t, "rid-1", got)
}

func unauthorizedServer(t *testing.T, hits *atomic.Int32) string {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/secure", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		})
	})
	return srv.URL
}

func TestAuthFailure(t *testing.T) {
	t.Parallel()

	t.Run("forces logout once per request", func(t *testing.T) {
		var hits atomic.Int32
		tokens := &fakeTokens{access: testutil.ValidToken(t), refresh: "r"}
		nav := &navigations{}
		rec := &notify.Recorder{}
		c := newClient(t, unauthorizedServer(t, &hits), apiclient.WithAfterReceive(
			apiclient.AuthFailure(tokens, nav, ""),
			apiclient.NotifyFailures(rec),
		))

		req, err := apiclient.NewRequest(context.Background(), http.MethodGet, "/secure", nil)
		require.NoError(t, err)

		_, err = c.Do(req)
		assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
		assert.True(t, req.Retried())

		// Same logical request failing again is not handled a second time.
		tokens.refresh = "r2"
		_, err = c.Do(req)
		assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))

		assert.Equal(t, int32(2), hits.Load(), "the hook never resends")
		assert.Equal(t, int32(1), tokens.destroyed.Load())
		assert.Equal(t, []string{apiclient.LoginPath}, nav.paths)
		assert.Empty(t, rec.All(), "401 is not notified")
	})

	t.Run("without refresh token nothing is destroyed", func(t *testing.T) {
		var hits atomic.Int32
		tokens := &fakeTokens{access: testutil.ValidToken(t)}
		nav := &navigations{}
		c := newClient(t, unauthorizedServer(t, &hits), apiclient.WithAfterReceive(apiclient.AuthFailure(tokens, nav, "/login")))

		err := c.Get(context.Background(), "/secure", nil)
		require.Error(t, err)
		assert.Zero(t, tokens.destroyed.Load())
		assert.Empty(t, nav.paths)
	})

	t.Run("store failure still forces logout", func(t *testing.T) {
		var hits atomic.Int32
		tokens := &fakeTokens{refreshErr: errors.New("disk unavailable")}
		nav := &navigations{}
		c := newClient(t, unauthorizedServer(t, &hits), apiclient.WithAfterReceive(apiclient.AuthFailure(tokens, nav, "/signin")))

		require.Error(t, c.Get(context.Background(), "/secure", nil))
		assert.Equal(t, int32(1), tokens.destroyed.Load())
		assert.Equal(t, []string{"/signin"}, nav.paths)
	})
}

func TestNotifyFailures(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(r chi.Router) {
		r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {})
		r.Get("/bad", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "Tag already exists"})
		})
		r.Get("/empty", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
	})

	rec := &notify.Recorder{}
	c := newClient(t, srv.URL, apiclient.WithAfterReceive(apiclient.NotifyFailures(rec)))
	ctx := context.Background()

	require.NoError(t, c.Get(ctx, "/ok", nil))
	require.Error(t, c.Get(ctx, "/bad", nil))
	require.Error(t, c.Get(ctx, "/empty", nil))

	assert.Equal(t, []string{"Tag already exists", "Request failed with status code 502"}, rec.Messages(notify.TypeError))
}

func TestNotifyFailures_CancelledContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := newServer(t, func(r chi.Router) {
		r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
	})
	t.Cleanup(func() { close(release) })

	rec := &notify.Recorder{}
	c := newClient(t, srv.URL, apiclient.WithAfterReceive(apiclient.NotifyFailures(rec)))

	ctx, cancel := context.WithCancelCause(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel(errors.New("sibling failed"))
	}()
	require.Error(t, c.Get(ctx, "/slow", nil))
	assert.Empty(t, rec.All())
}
