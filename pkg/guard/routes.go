package guard

import "slices"

const (
	LoginPath   = "/login"
	LandingPath = "/dashboard/requests"
	HomePath    = "/dashboard/home"
)

// Route describes a dashboard page and who may open it.
type Route struct {
	Name          string
	Path          string
	RequiresAuth  bool
	RequiresGuest bool
	Roles         []string
	// Redirect, when set, sends every visit elsewhere.
	Redirect string
}

// Allows reports whether role may open r. Routes without roles allow anyone.
func (r Route) Allows(role string) bool {
	return len(r.Roles) == 0 || slices.Contains(r.Roles, role)
}

// Routes is the admin dashboard route table.
func Routes() []Route {
	admin := []string{"Admin"}
	return []Route{
		{Name: "root", Path: "/", Redirect: HomePath},
		{Name: "dashboard", Path: "/dashboard", RequiresAuth: true},
		{Name: "dashboard-home", Path: HomePath, RequiresAuth: true},
		{Name: "teacher-requests", Path: LandingPath, RequiresAuth: true},
		{Name: "teachers", Path: "/dashboard/teachers", RequiresAuth: true},
		{Name: "students", Path: "/dashboard/students", RequiresAuth: true},
		{Name: "content-requests", Path: "/dashboard/content-requests", RequiresAuth: true, Roles: admin},
		{Name: "content-types", Path: "/dashboard/content-types", RequiresAuth: true, Roles: admin},
		{Name: "tags", Path: "/dashboard/tags", RequiresAuth: true, Roles: admin},
		{Name: "login", Path: LoginPath, RequiresGuest: true},
		{Name: "admin-auth-success", Path: "/admin/auth-success", RequiresGuest: true},
		{Name: "admin-auth-error", Path: "/admin/auth-error", RequiresGuest: true},
	}
}
