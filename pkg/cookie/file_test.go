package cookie_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/cookie"
)

func TestFileBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "nested", "session.json")
	backend := cookie.NewFileBackend(path)
	assert.Equal(t, path, backend.Path())

	_, err := backend.Fetch(ctx, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)

	store, err := cookie.New(backend)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "access_token", "tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second backend on the same file sees the value.
	reopened, err := cookie.New(cookie.NewFileBackend(path))
	require.NoError(t, err)
	token, err := cookie.GetAs[string](ctx, reopened, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, reopened.Remove(ctx, "access_token"))
	require.NoError(t, reopened.Remove(ctx, "access_token"))

	names, err := store.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileBackend_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := cookie.NewFileBackend(path).Fetch(context.Background(), "k")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}
