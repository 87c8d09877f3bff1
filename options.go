package learnzone

import (
	"log/slog"
	"net/http"

	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/cookie"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
)

type options struct {
	backend    cookie.Backend
	notifier   notify.Notifier
	navigator  apiclient.Navigator
	log        *slog.Logger
	httpClient *http.Client
}

type Option func(*options)

// WithBackend stores the session in b instead of the configured backend.
func WithBackend(b cookie.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithNotifier sets where user-facing messages go. The default logs them.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithNavigator is told where to send the user after a forced logout.
func WithNavigator(n apiclient.Navigator) Option {
	return func(o *options) { o.navigator = n }
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithHTTPClient replaces the transport of both API pipelines.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}
