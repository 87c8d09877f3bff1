// Package notify carries user-facing messages (toasts in a browser, stderr
// lines in the CLI) from the request pipeline and the dashboard mutations to
// whatever surface the embedding application provides.
package notify
