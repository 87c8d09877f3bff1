// Package cookie provides the client-side session store: a key/value store
// with cookie semantics.
//
// Every write is stamped with an attribute set (lifetime in days, path, domain,
// secure, same-site). Writes start from the strict set returned by
// StrictOptions (same-site strict, secure, seven days) and per-call options
// only override individual attributes.
//
// # Overview
//
// A Store serialises values as JSON and hands Records to a Backend:
//
//   - MemoryBackend: process memory, optional cleanup goroutine.
//   - FileBackend: JSON file with owner-only permissions, for CLIs.
//   - redis.CookieBackend: shared Redis keys with native TTL (pkg/redis).
//
// Typed access goes through Item, which pairs a key with a Codec. JSONCodec
// returns the raw text when it is not valid JSON and the target is a string,
// so plain values written by older clients still read back.
//
// # Usage
//
//	import "github.com/hajar-aswad/Learnzone/pkg/cookie"
//
//	store, err := cookie.New(cookie.NewMemoryBackend(time.Minute))
//	if err != nil {
//	    // handle error
//	}
//
//	token := cookie.NewItem[string](store, "access_token", nil)
//	_ = token.Set(ctx, "eyJ...", cookie.WithExpires(1))
//	value, err := token.Get(ctx)
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // nothing stored, or expired
//	}
//
// # Error Handling
//
// Missing and expired values both report ErrCookieNotFound. Removing a missing
// value succeeds.
package cookie
