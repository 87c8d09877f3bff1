// Package redis connects to a Redis server and provides a cookie.Backend on
// top of it, so several processes can share one authentication session.
//
// Connect retries the initial ping according to Config:
//
//	cfg := redis.DefaultConfig()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// CookieBackend keeps each record as a JSON document under Config.KeyPrefix.
// Records that carry an expiry are written with the matching TTL:
//
//	store, err := cookie.New(redis.NewCookieBackendFromConfig(client, cfg))
//
// Healthcheck returns a probe suitable for readiness checks.
//
// Errors are sentinel values joined with the underlying go-redis error, so
// errors.Is works for both.
package redis
