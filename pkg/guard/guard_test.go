package guard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/internal/testutil"
	"github.com/hajar-aswad/Learnzone/pkg/guard"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

type fakeSession struct {
	authenticated bool
	role          string
	checks        int
}

func (f *fakeSession) CheckAuth(context.Context) bool {
	f.checks++
	return f.authenticated
}

func (f *fakeSession) UserRole() string { return f.role }

func TestNavigate(t *testing.T) {
	t.Parallel()

	anon := &fakeSession{role: session.RoleGuest}
	admin := &fakeSession{authenticated: true, role: "Admin"}
	teacher := &fakeSession{authenticated: true, role: "Teacher"}
	unknown := &fakeSession{authenticated: true, role: session.RoleGuest}

	tests := []struct {
		name    string
		session *fakeSession
		path    string
		want    guard.Decision
	}{
		{"anonymous to protected", anon, "/dashboard/tags?page=2", guard.Decision{Redirect: "/login?redirect=%2Fdashboard%2Ftags%3Fpage%3D2", Reason: "unauthenticated"}},
		{"anonymous to login", anon, "/login", guard.Decision{Allowed: true}},
		{"signed in to login", admin, "/login", guard.Decision{Redirect: guard.LandingPath, Reason: "authenticated"}},
		{"signed in to auth callback", admin, "/admin/auth-success", guard.Decision{Redirect: guard.LandingPath, Reason: "authenticated"}},
		{"admin to tags", admin, "/dashboard/tags", guard.Decision{Allowed: true}},
		{"teacher to tags", teacher, "/dashboard/tags", guard.Decision{Redirect: guard.LandingPath, Reason: "forbidden"}},
		{"teacher to requests", teacher, "/dashboard/requests/", guard.Decision{Allowed: true}},
		{"unknown role to tags", unknown, "/dashboard/content-types", guard.Decision{Allowed: true}},
		{"root alias", anon, "/", guard.Decision{Redirect: guard.HomePath, Reason: "alias"}},
		{"not found", admin, "/nope", guard.Decision{Redirect: guard.HomePath, Reason: "not found"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := guard.New(tt.session)
			assert.Equal(t, tt.want, g.Navigate(context.Background(), tt.path))
		})
	}
}

func TestResolve_ChecksSessionEveryTime(t *testing.T) {
	t.Parallel()

	s := &fakeSession{authenticated: true, role: "Admin"}
	g := guard.New(s)
	route, ok := g.Match("/dashboard/students")
	require.True(t, ok)

	assert.True(t, g.Resolve(context.Background(), route, route.Path).Allowed)
	s.authenticated = false
	assert.False(t, g.Resolve(context.Background(), route, route.Path).Allowed)
	assert.Equal(t, 2, s.checks)
}

func TestResolve_WithSessionManager(t *testing.T) {
	t.Parallel()

	store := testutil.MemoryStore(t)
	m, err := session.New(store)
	require.NoError(t, err)
	g := guard.New(m, guard.WithLoginPath("/signin"))
	ctx := context.Background()

	d := g.Navigate(ctx, "/dashboard/home")
	assert.Equal(t, "/signin?redirect=%2Fdashboard%2Fhome", d.Redirect)

	require.NoError(t, m.SaveToken(ctx, testutil.ValidToken(t), 0))
	assert.True(t, g.Navigate(ctx, "/dashboard/home").Allowed)

	require.NoError(t, m.SaveToken(ctx, testutil.ExpiredToken(t), 0))
	assert.False(t, g.Navigate(ctx, "/dashboard/home").Allowed)
}

func TestAfterLogin(t *testing.T) {
	t.Parallel()

	g := guard.New(&fakeSession{})
	assert.Equal(t, "/dashboard/tags?page=2", g.AfterLogin("redirect=%2Fdashboard%2Ftags%3Fpage%3D2"))
	assert.Equal(t, "/dashboard/tags", g.AfterLogin("?redirect=/dashboard/tags"))
	assert.Equal(t, guard.LandingPath, g.AfterLogin(""))
	assert.Equal(t, guard.LandingPath, g.AfterLogin("redirect=https://evil.example"))
	assert.Equal(t, guard.LandingPath, g.AfterLogin("redirect=//evil.example"))
	assert.Equal(t, guard.LandingPath, g.AfterLogin("redirect=%zz"))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	s := &fakeSession{role: session.RoleGuest}
	g := guard.New(s)

	r := chi.NewRouter()
	r.Use(g.Middleware)
	r.Get("/dashboard/*", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("page")) })
	r.Get("/login", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("login")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/students", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard%2Fstudents", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "login", rec.Body.String())

	s.authenticated, s.role = true, "Admin"
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/students", nil))
	assert.Equal(t, "page", rec.Body.String())
}
