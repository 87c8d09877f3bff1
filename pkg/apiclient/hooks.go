package apiclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hajar-aswad/Learnzone/pkg/jwt"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/requestid"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// TokenSource yields the current access token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenStore is the part of the session the 401 handling needs.
type TokenStore interface {
	RefreshToken(ctx context.Context) (string, error)
	DestroyTokens(ctx context.Context) error
}

// Navigator sends the user somewhere, e.g. the login page.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Navigate(ctx context.Context, path string) { f(ctx, path) }

// LoginPath is where a forced logout sends the user.
const LoginPath = "/login"

// BearerToken attaches "Authorization: Bearer <token>" while a non-expired
// token is available. Requests without a token are sent as is.
func BearerToken(src TokenSource, codec *jwt.Codec) BeforeSend {
	if codec == nil {
		codec = jwt.NewCodec()
	}
	return func(req *Request) error {
		token, err := src.Token(req.Context())
		if err != nil || token == "" || codec.IsExpired(token) {
			return nil
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// RequestID stamps the request with the context's correlation id, creating
// one when missing.
func RequestID() BeforeSend {
	return func(req *Request) error {
		ctx, id := requestid.Ensure(req.Context())
		req.SetContext(ctx)
		req.Header.Set(requestid.Header, id)
		return nil
	}
}

// LogRequest logs every outgoing request at debug level.
func LogRequest(log *slog.Logger) BeforeSend {
	return func(req *Request) error {
		log.DebugContext(req.Context(), "api request",
			logger.Method(req.Method),
			logger.URL(req.Path),
		)
		return nil
	}
}

// LogResponse logs every outcome; failures at warn level.
func LogResponse(log *slog.Logger) AfterReceive {
	return func(req *Request, resp *Response, err error) {
		attrs := []slog.Attr{logger.Method(req.Method), logger.URL(req.Path)}
		if resp != nil {
			attrs = append(attrs, logger.Status(resp.StatusCode), logger.Duration(resp.Duration))
		}
		if err != nil {
			attrs = append(attrs, logger.Error(err), slog.String("message", Message(err, "")))
			log.LogAttrs(req.Context(), slog.LevelWarn, "api error", attrs...)
			return
		}
		log.LogAttrs(req.Context(), slog.LevelDebug, "api response", attrs...)
	}
}

// AuthFailure handles a 401 once per request: the request is marked retried
// and, when a refresh token is stored, all tokens are destroyed and the user
// is sent to loginPath. A failing token store triggers the same forced logout.
// No token exchange is attempted.
func AuthFailure(store TokenStore, nav Navigator, loginPath string) AfterReceive {
	if loginPath == "" {
		loginPath = LoginPath
	}
	return func(req *Request, _ *Response, err error) {
		if !IsStatus(err, http.StatusUnauthorized) || req.Retried() {
			return
		}
		req.MarkRetried()

		ctx := req.Context()
		if _, rerr := store.RefreshToken(ctx); errors.Is(rerr, session.ErrNoToken) {
			return
		}
		_ = store.DestroyTokens(ctx)
		if nav != nil {
			nav.Navigate(ctx, loginPath)
		}
	}
}

// NotifyFailures shows one notification per failed request. 401 responses
// are left to AuthFailure, and requests whose context was cancelled are not
// reported.
func NotifyFailures(n notify.Notifier) AfterReceive {
	return func(req *Request, _ *Response, err error) {
		if err == nil || IsStatus(err, http.StatusUnauthorized) || req.Context().Err() != nil {
			return
		}
		notify.Error(req.Context(), n, Message(err, DefaultMessage))
	}
}
