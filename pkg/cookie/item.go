package cookie

import (
	"context"
	"encoding/json"
	"fmt"
)

// Codec converts a typed value to and from its stored text.
type Codec[T any] interface {
	Encode(v T) (string, error)
	Decode(raw string) (T, error)
}

// JSONCodec stores values as JSON. Text that is not valid JSON decodes to
// itself when T is a string (or any), so plain values written by older
// clients keep working.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (JSONCodec[T]) Decode(raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		switch p := any(&v).(type) {
		case *string:
			*p = raw
			return v, nil
		case *any:
			*p = raw
			return v, nil
		}
		return v, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return v, nil
}

// StringCodec stores text as is.
type StringCodec struct{}

func (StringCodec) Encode(v string) (string, error)   { return v, nil }
func (StringCodec) Decode(raw string) (string, error) { return raw, nil }

// Item is a typed handle on one key of a Store.
type Item[T any] struct {
	store *Store
	name  string
	codec Codec[T]
	opts  []Option
}

// NewItem binds name to store. A nil codec means JSONCodec. Options are
// applied to every write of the item, before per-call options.
func NewItem[T any](store *Store, name string, codec Codec[T], opts ...Option) *Item[T] {
	if codec == nil {
		codec = JSONCodec[T]{}
	}
	return &Item[T]{store: store, name: name, codec: codec, opts: opts}
}

func (i *Item[T]) Name() string { return i.name }

func (i *Item[T]) Set(ctx context.Context, v T, opts ...Option) error {
	raw, err := i.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", i.name, err)
	}
	merged := make([]Option, 0, len(i.opts)+len(opts))
	merged = append(merged, i.opts...)
	merged = append(merged, opts...)
	return i.store.SetRaw(ctx, i.name, raw, merged...)
}

// Get returns ErrCookieNotFound when nothing is stored.
func (i *Item[T]) Get(ctx context.Context) (T, error) {
	raw, err := i.store.Get(ctx, i.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return i.codec.Decode(raw)
}

func (i *Item[T]) Exists(ctx context.Context) (bool, error) {
	return i.store.Exists(ctx, i.name)
}

func (i *Item[T]) Remove(ctx context.Context) error {
	return i.store.Remove(ctx, i.name)
}

// GetAs reads name from store through JSONCodec.
func GetAs[T any](ctx context.Context, store *Store, name string) (T, error) {
	return NewItem[T](store, name, nil).Get(ctx)
}
