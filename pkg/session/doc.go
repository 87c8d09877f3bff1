// Package session manages the authentication session of the admin client.
//
// A Manager combines the token codec with a cookie.Store. The access token
// is kept under "access_token" (7 days unless the server sends expiresIn),
// the refresh token under "refresh_token" (30 days). Authentication status is
// derived from the stored token alone: present and not expired.
//
// The Manager also owns the in-memory session Record and exposes the actions
// that mutate it (Login, Logout, CheckAuth, Refresh, SetUser,
// SetAuthenticated, SetError). Login reports failures in its Result instead
// of returning an error. Logout always clears local state.
//
// Lifecycle:
//
//	anonymous --login--> authenticated
//	authenticated --logout|expire|unauthorized--> anonymous
//
// There is no refreshing state; a refresh token is only checked for
// presence. OnTransition observers run after each change.
package session
