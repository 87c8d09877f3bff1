// Package dashboard is the cached view of the admin API used by the CLI and
// by embedding UIs.
//
// Reads go through the query cache with per-resource windows: review queues
// are fresh for 2 minutes, details, accounts and taxonomy for 5, uploaded
// files for 10. Mutations notify success and keep the cache current. Approving
// or rejecting teacher request 7 invalidates the request list and drops the
// cached detail of request 7 only.
//
// Reads that swallow failures at the api layer return nil results; those are
// passed through uncached so the next read tries again.
package dashboard
