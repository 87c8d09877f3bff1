// Package guard decides which dashboard pages the current session may open.
//
// Pages that require a session send anonymous visitors to
// /login?redirect=<requested path>. Guest-only pages send signed-in users to
// the landing page, /dashboard/requests. Pages restricted to roles send users
// with another known role to the landing page as well.
//
//	g := guard.New(sessionManager)
//	r := chi.NewRouter()
//	r.Use(g.Middleware)
package guard
