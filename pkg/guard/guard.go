package guard

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// Session is what the guard needs to know about the current user.
// *session.Manager implements it.
type Session interface {
	CheckAuth(ctx context.Context) bool
	UserRole() string
}

// Decision is the outcome of a navigation. Redirect is set when Allowed is
// false.
type Decision struct {
	Allowed  bool
	Redirect string
	Reason   string
}

func allow() Decision { return Decision{Allowed: true} }

func redirect(to, reason string) Decision {
	return Decision{Redirect: to, Reason: reason}
}

type Guard struct {
	session Session
	routes  []Route
	login   string
	landing string
	log     *slog.Logger
}

type Option func(*Guard)

func WithRoutes(routes []Route) Option {
	return func(g *Guard) { g.routes = routes }
}

func WithLoginPath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.login = path
		}
	}
}

// WithLandingPath sets where signed-in users are sent from guest pages.
func WithLandingPath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.landing = path
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

func New(s Session, opts ...Option) *Guard {
	g := &Guard{
		session: s,
		routes:  Routes(),
		login:   LoginPath,
		landing: LandingPath,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("guard"))
	return g
}

// Match finds the route for path, ignoring a trailing slash and the query.
func (g *Guard) Match(path string) (Route, bool) {
	path, _, _ = strings.Cut(path, "?")
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range g.routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve decides whether route may be opened. fullPath is the requested
// location including its query; it is carried to the login page so the user
// can be sent back after signing in. The session is re-checked on every call.
func (g *Guard) Resolve(ctx context.Context, route Route, fullPath string) Decision {
	if route.Redirect != "" {
		return redirect(route.Redirect, "alias")
	}

	authenticated := g.session.CheckAuth(ctx)
	switch {
	case route.RequiresAuth && !authenticated:
		return redirect(g.login+"?"+url.Values{"redirect": {fullPath}}.Encode(), "unauthenticated")
	case route.RequiresGuest && authenticated:
		return redirect(g.landing, "authenticated")
	}

	if role := g.session.UserRole(); role != session.RoleGuest && !route.Allows(role) {
		g.log.InfoContext(ctx, "route denied", slog.String("route", route.Name), logger.Role(role))
		return redirect(g.landing, "forbidden")
	}
	return allow()
}

// Navigate matches fullPath and resolves it. Unknown paths go to the
// dashboard home.
func (g *Guard) Navigate(ctx context.Context, fullPath string) Decision {
	route, ok := g.Match(fullPath)
	if !ok {
		return redirect(HomePath, "not found")
	}
	return g.Resolve(ctx, route, fullPath)
}

// AfterLogin returns the page to open once signed in: the redirect query
// parameter when it is a local path, the landing page otherwise.
func (g *Guard) AfterLogin(rawQuery string) string {
	q, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return g.landing
	}
	to := q.Get("redirect")
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.HasPrefix(to, "/\\") {
		return g.landing
	}
	return to
}

// Middleware is for programs that serve dashboard pages over net/http
// themselves: each request path is resolved like a navigation and denied
// ones answer 302 Found.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := g.Navigate(r.Context(), r.URL.RequestURI())
		if !d.Allowed {
			http.Redirect(w, r, d.Redirect, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
