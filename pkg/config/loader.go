package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Loader parses environment variables into tagged structs. Each struct type
// is parsed once per Loader and served from cache afterwards.
type Loader struct {
	prefix   string
	envFiles []string
	environ  map[string]string

	loadFiles sync.Once
	filesErr  error

	mu    sync.Mutex
	cache map[reflect.Type]any
}

// Option configures a Loader.
type Option func(*Loader)

// WithPrefix prepends prefix to every env tag, e.g. "LEARNZONE_".
func WithPrefix(prefix string) Option {
	return func(l *Loader) { l.prefix = prefix }
}

// WithEnvFiles loads the files into the process environment before the first
// parse. Missing files are skipped; values already set in the environment win.
func WithEnvFiles(files ...string) Option {
	return func(l *Loader) { l.envFiles = append(l.envFiles, files...) }
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(l *Loader) { l.environ = vars }
}

// NewLoader creates a Loader. Without WithEnvFiles it reads ".env" when present.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{cache: make(map[reflect.Type]any)}
	for _, opt := range opts {
		opt(l)
	}
	if l.envFiles == nil {
		l.envFiles = []string{".env"}
	}
	return l
}

func (l *Loader) loadEnvFiles() error {
	l.loadFiles.Do(func() {
		var existing []string
		for _, f := range l.envFiles {
			if _, err := os.Stat(f); err == nil {
				existing = append(existing, f)
			}
		}
		if len(existing) == 0 {
			return
		}
		if err := godotenv.Load(existing...); err != nil {
			l.filesErr = errors.Join(ErrEnvFile, err)
		}
	})
	return l.filesErr
}

func (l *Loader) options() env.Options {
	opts := env.Options{Prefix: l.prefix}
	if l.environ != nil {
		opts.Environment = l.environ
	}
	return opts
}

// Reset drops cached values so the next Parse reads the environment again.
func (l *Loader) Reset() {
	l.mu.Lock()
	l.cache = make(map[reflect.Type]any)
	l.mu.Unlock()
}

// Parse fills v using loader l.
func Parse[T any](l *Loader, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := l.loadEnvFiles(); err != nil {
		return err
	}

	typ := reflect.TypeFor[T]()

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[typ]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.ParseWithOptions(v, l.options()); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	l.cache[typ] = *v
	return nil
}

var (
	defaultLoaderOnce sync.Once
	defaultLoader     *Loader
)

func loader() *Loader {
	defaultLoaderOnce.Do(func() { defaultLoader = NewLoader() })
	return defaultLoader
}

// Load fills v from the process environment and an optional ".env" file.
// Fields keep their envDefault values when unset.
//
//	var cfg apiclient.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	return Parse(loader(), v)
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("load configuration: %v", err))
	}
}
