package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hajar-aswad/Learnzone/pkg/cookie"
)

// CookieBackend stores cookie records as JSON under a key prefix. Records
// with an expiry get a matching key TTL so the server drops them on its own.
type CookieBackend struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
	now           func() time.Time
}

var _ cookie.Backend = (*CookieBackend)(nil)

// NewCookieBackend wraps client. An empty prefix stores names as is.
func NewCookieBackend(client redis.UniversalClient, prefix string) *CookieBackend {
	return &CookieBackend{
		db:            client,
		prefix:        prefix,
		scanBatchSize: 100,
		now:           time.Now,
	}
}

// NewCookieBackendFromConfig applies the prefix and scan batch size from cfg.
func NewCookieBackendFromConfig(client redis.UniversalClient, cfg Config) *CookieBackend {
	b := NewCookieBackend(client, cfg.KeyPrefix)
	if cfg.ScanBatchSize > 0 {
		b.scanBatchSize = int64(cfg.ScanBatchSize)
	}
	return b
}

func (b *CookieBackend) key(name string) string {
	return b.prefix + name
}

func (b *CookieBackend) Put(ctx context.Context, rec cookie.Record) error {
	if rec.Name == "" {
		return cookie.ErrEmptyName
	}

	var ttl time.Duration
	if !rec.ExpiresAt.IsZero() {
		ttl = rec.TTL(b.now())
		if ttl <= 0 {
			return b.Delete(ctx, rec.Name)
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal cookie record: %w", err)
	}
	return b.db.Set(ctx, b.key(rec.Name), data, ttl).Err()
}

func (b *CookieBackend) Fetch(ctx context.Context, name string) (cookie.Record, error) {
	data, err := b.db.Get(ctx, b.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cookie.Record{}, cookie.ErrCookieNotFound
	}
	if err != nil {
		return cookie.Record{}, err
	}

	var rec cookie.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return cookie.Record{}, errors.Join(ErrCorruptRecord, err)
	}
	return rec, nil
}

func (b *CookieBackend) Delete(ctx context.Context, name string) error {
	return b.db.Del(ctx, b.key(name)).Err()
}

// Names scans the prefix with SCAN so large databases are not blocked.
func (b *CookieBackend) Names(ctx context.Context) ([]string, error) {
	var (
		names  []string
		cursor uint64
	)
	for {
		batch, next, err := b.db.Scan(ctx, cursor, b.prefix+"*", b.scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range batch {
			names = append(names, strings.TrimPrefix(key, b.prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
