package query

import "context"

// Mutation is a write whose success changes what cached queries should show.
type Mutation[V, R any] struct {
	Fn func(ctx context.Context, v V) (R, error)

	// Invalidate and Remove name the key prefixes to mark stale and to drop
	// after a successful call.
	Invalidate func(v V, r R) []Key
	Remove     func(v V, r R) []Key

	OnSuccess func(ctx context.Context, v V, r R)
	OnError   func(ctx context.Context, v V, err error)
}

// Mutate runs m.Fn once. On success the named keys are invalidated, then
// removed, then OnSuccess runs. Errors are passed to OnError and returned.
func Mutate[V, R any](ctx context.Context, c *Client, m Mutation[V, R], v V) (R, error) {
	if m.Fn == nil {
		var zero R
		return zero, ErrNoMutation
	}

	r, err := m.Fn(ctx, v)
	if err != nil {
		if m.OnError != nil {
			m.OnError(ctx, v, err)
		}
		return r, err
	}

	if m.Invalidate != nil {
		for _, k := range m.Invalidate(v, r) {
			c.Invalidate(k)
		}
	}
	if m.Remove != nil {
		for _, k := range m.Remove(v, r) {
			c.Remove(k)
		}
	}
	if m.OnSuccess != nil {
		m.OnSuccess(ctx, v, r)
	}
	return r, nil
}
