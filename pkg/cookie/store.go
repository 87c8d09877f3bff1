package cookie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Store is a key/value store with cookie semantics: values are serialised as
// JSON text and every write carries the strict attribute set unless the call
// overrides it.
type Store struct {
	backend  Backend
	defaults Options
	now      func() time.Time
}

// New creates a store over backend. Options adjust the defaults, which start
// from StrictOptions.
func New(backend Backend, opts ...Option) (*Store, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	return &Store{
		backend:  backend,
		defaults: applyOptions(StrictOptions(), opts),
		now:      time.Now,
	}, nil
}

// WithClock replaces the clock used to stamp and expire records.
func (s *Store) WithClock(now func() time.Time) *Store {
	if now != nil {
		s.now = now
	}
	return s
}

// Defaults returns the attribute set applied to writes.
func (s *Store) Defaults() Options {
	return s.defaults
}

// Set serialises value as JSON and stores it.
func (s *Store) Set(ctx context.Context, name string, value any, opts ...Option) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return s.SetRaw(ctx, name, string(data), opts...)
}

// SetRaw stores already encoded text.
func (s *Store) SetRaw(ctx context.Context, name, raw string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}
	options := applyOptions(s.defaults, opts)
	return s.backend.Put(ctx, newRecord(name, raw, options, s.now()))
}

// Lookup returns the live record stored under name.
func (s *Store) Lookup(ctx context.Context, name string) (Record, error) {
	if name == "" {
		return Record{}, ErrEmptyName
	}
	rec, err := s.backend.Fetch(ctx, name)
	if err != nil {
		return Record{}, err
	}
	if rec.Expired(s.now()) {
		_ = s.backend.Delete(ctx, name)
		return Record{}, ErrCookieNotFound
	}
	return rec, nil
}

// Get returns the stored text. Empty values are reported as not found.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	rec, err := s.Lookup(ctx, name)
	if err != nil {
		return "", err
	}
	if rec.Value == "" {
		return "", ErrCookieNotFound
	}
	return rec.Value, nil
}

// Exists reports whether a live record is stored under name.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.Lookup(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrCookieNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Remove deletes name. Removing a missing value is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return s.backend.Delete(ctx, name)
}

// Names lists the stored names.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	return s.backend.Names(ctx)
}

// Clear removes every stored value.
func (s *Store) Clear(ctx context.Context) error {
	names, err := s.backend.Names(ctx)
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range names {
		if err := s.backend.Delete(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Entry is a value with per-entry options for SetMultiple.
type Entry struct {
	Value   any
	Options []Option
}

// SetMultiple stores every entry, stopping at the first failure.
func (s *Store) SetMultiple(ctx context.Context, entries map[string]Entry) error {
	for name, entry := range entries {
		if err := s.Set(ctx, name, entry.Value, entry.Options...); err != nil {
			return err
		}
	}
	return nil
}

// GetMultiple returns the stored text for every name that exists.
func (s *Store) GetMultiple(ctx context.Context, names ...string) (map[string]string, error) {
	result := make(map[string]string, len(names))
	for _, name := range names {
		value, err := s.Get(ctx, name)
		if errors.Is(err, ErrCookieNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result[name] = value
	}
	return result, nil
}
