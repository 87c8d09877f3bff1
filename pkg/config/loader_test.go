package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/config"
)

type apiConfig struct {
	BaseURL string        `env:"API_URL" envDefault:"http://localhost:3000"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	l := config.NewLoader(config.WithEnvironment(map[string]string{}), config.WithEnvFiles())
	var cfg apiConfig
	require.NoError(t, config.Parse(l, &cfg))
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestParse_Prefix(t *testing.T) {
	t.Parallel()

	l := config.NewLoader(
		config.WithPrefix("LEARNZONE_"),
		config.WithEnvironment(map[string]string{
			"LEARNZONE_API_URL":     "https://api.example.test",
			"LEARNZONE_API_TIMEOUT": "3s",
			"API_URL":               "ignored",
		}),
	)
	var cfg apiConfig
	require.NoError(t, config.Parse(l, &cfg))
	assert.Equal(t, "https://api.example.test", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestParse_CachedPerType(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"API_URL": "first"}
	l := config.NewLoader(config.WithEnvironment(vars))

	var a apiConfig
	require.NoError(t, config.Parse(l, &a))

	vars["API_URL"] = "second"
	var b apiConfig
	require.NoError(t, config.Parse(l, &b))
	assert.Equal(t, "first", b.BaseURL)

	l.Reset()
	var c apiConfig
	require.NoError(t, config.Parse(l, &c))
	assert.Equal(t, "second", c.BaseURL)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	l := config.NewLoader(config.WithEnvironment(map[string]string{}))

	var missing requiredConfig
	assert.ErrorIs(t, config.Parse(l, &missing), config.ErrParsingConfig)
	assert.ErrorIs(t, config.Parse[apiConfig](l, nil), config.ErrNilPointer)
}

func TestParse_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONFIG_TEST_TOKEN=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CONFIG_TEST_TOKEN") })

	l := config.NewLoader(config.WithPrefix("CONFIG_TEST_"), config.WithEnvFiles(path, "missing.env"))
	var cfg requiredConfig
	require.NoError(t, config.Parse(l, &cfg))
	assert.Equal(t, "from-file", cfg.Token)
}
