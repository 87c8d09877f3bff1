package cookie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// FileBackend keeps records in a JSON file so a session survives between
// process runs. The file is rewritten atomically and readable only by its owner.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend creates a backend stored at path. The parent directory is
// created on first write.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file location.
func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) Put(_ context.Context, rec Record) error {
	if rec.Name == "" {
		return ErrEmptyName
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.load()
	if err != nil {
		return err
	}
	records[rec.Name] = rec
	return b.save(records)
}

func (b *FileBackend) Fetch(_ context.Context, name string) (Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.load()
	if err != nil {
		return Record{}, err
	}
	rec, ok := records[name]
	if !ok {
		return Record{}, ErrCookieNotFound
	}
	return rec, nil
}

func (b *FileBackend) Delete(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.load()
	if err != nil {
		return err
	}
	if _, ok := records[name]; !ok {
		return nil
	}
	delete(records, name)
	return b.save(records)
}

func (b *FileBackend) Names(_ context.Context) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Must be called with lock held.
func (b *FileBackend) load() (map[string]Record, error) {
	records := make(map[string]Record)

	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cookie file: %w", err)
	}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}
	return records, nil
}

// Must be called with lock held.
func (b *FileBackend) save(records map[string]Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cookie file: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create cookie dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cookies-*")
	if err != nil {
		return fmt.Errorf("create temp cookie file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod cookie file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cookie file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cookie file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("replace cookie file: %w", err)
	}
	return nil
}
