package api_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/api"
)

func TestParseEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("partial override keeps defaults", func(t *testing.T) {
		e, err := api.ParseEndpoints([]byte("reject_teacher:\n  method: DELETE\ntags:\n  path: /v2/tags\n"))
		require.NoError(t, err)

		def := api.DefaultEndpoints()
		assert.Equal(t, api.Route{Method: http.MethodDelete, Path: def.RejectTeacher.Path}, e.RejectTeacher)
		assert.Equal(t, api.Route{Method: http.MethodGet, Path: "/v2/tags"}, e.Tags)
		assert.Equal(t, def.Login, e.Login)
	})

	t.Run("unsupported method", func(t *testing.T) {
		_, err := api.ParseEndpoints([]byte("login:\n  method: TRACE\n"))
		assert.ErrorIs(t, err, api.ErrInvalidEndpoints)
	})

	t.Run("relative path", func(t *testing.T) {
		_, err := api.ParseEndpoints([]byte("login:\n  path: authentication/login\n"))
		assert.ErrorIs(t, err, api.ErrInvalidEndpoints)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := api.ParseEndpoints([]byte("login: [\n"))
		assert.ErrorIs(t, err, api.ErrInvalidEndpoints)
	})
}

func TestLoadEndpoints(t *testing.T) {
	t.Parallel()

	e, err := api.LoadEndpoints("")
	require.NoError(t, err)
	assert.Equal(t, api.DefaultEndpoints(), e)

	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte("approve_video:\n  path: /videos/{id}/approve\n"), 0o600))
	e, err = api.LoadEndpoints(path)
	require.NoError(t, err)
	assert.Equal(t, "/videos/{id}/approve", e.ApproveVideo.Path)

	_, err = api.LoadEndpoints(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, api.ErrInvalidEndpoints)
}

func TestEndpoints_Lookup(t *testing.T) {
	t.Parallel()

	e := api.DefaultEndpoints()
	r, err := e.Lookup("disapprove_video")
	require.NoError(t, err)
	assert.Equal(t, "/course-video/dissapprove/{id}", r.Path)

	_, err = e.Lookup("nope")
	assert.ErrorIs(t, err, api.ErrUnknownEndpoint)
}
