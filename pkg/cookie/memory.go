package cookie

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryBackend keeps records in process memory.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string]Record
	ticker  *time.Ticker
	done    chan struct{}
}

// NewMemoryBackend creates an in-memory backend. A positive cleanupInterval
// starts a goroutine that drops expired records; call Close to stop it.
func NewMemoryBackend(cleanupInterval time.Duration) *MemoryBackend {
	b := &MemoryBackend{
		records: make(map[string]Record),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		b.ticker = time.NewTicker(cleanupInterval)
		go b.cleanupLoop(b.ticker)
	}

	return b
}

func (b *MemoryBackend) Put(_ context.Context, rec Record) error {
	if rec.Name == "" {
		return ErrEmptyName
	}
	b.mu.Lock()
	b.records[rec.Name] = rec
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Fetch(_ context.Context, name string) (Record, error) {
	b.mu.RLock()
	rec, ok := b.records[name]
	b.mu.RUnlock()
	if !ok {
		return Record{}, ErrCookieNotFound
	}
	return rec, nil
}

func (b *MemoryBackend) Delete(_ context.Context, name string) error {
	b.mu.Lock()
	delete(b.records, name)
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Names(_ context.Context) ([]string, error) {
	b.mu.RLock()
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	b.mu.RUnlock()
	slices.Sort(names)
	return names, nil
}

// DeleteExpired drops every record expired at now.
func (b *MemoryBackend) DeleteExpired(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for name, rec := range b.records {
		if rec.Expired(now) {
			delete(b.records, name)
			removed++
		}
	}
	return removed
}

// Close stops the cleanup goroutine.
func (b *MemoryBackend) Close() error {
	if b.ticker != nil {
		b.ticker.Stop()
		close(b.done)
		b.ticker = nil
	}
	return nil
}

func (b *MemoryBackend) cleanupLoop(ticker *time.Ticker) {
	for {
		select {
		case now := <-ticker.C:
			b.DeleteExpired(now)
		case <-b.done:
			return
		}
	}
}
