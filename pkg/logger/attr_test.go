package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestOptionalAttrs(t *testing.T) {
	assert.Equal(t, "user_id", logger.UserID(7).Key)
	assert.True(t, logger.UserID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "Admin", logger.Role("Admin").Value.String())
	assert.True(t, logger.Role("").Equal(slog.Attr{}))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestHTTPAttrs(t *testing.T) {
	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, int64(401), logger.Status(401).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "query_key", logger.QueryKey(`["tags"]`).Key)
}

func TestTransition(t *testing.T) {
	attr := logger.Transition("anonymous", "authenticated")
	require.Equal(t, "transition", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "anonymous", g[0].Value.String())
	assert.Equal(t, "authenticated", g[1].Value.String())
}
