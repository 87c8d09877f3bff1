package learnzone

import (
	"os"
	"path/filepath"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/config"
	"github.com/hajar-aswad/Learnzone/pkg/cookie"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/query"
	"github.com/hajar-aswad/Learnzone/pkg/redis"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// EnvPrefix is prepended to every environment variable, e.g. LEARNZONE_API_URL.
const EnvPrefix = "LEARNZONE_"

// Session backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config gathers the configuration of every component.
type Config struct {
	API        apiclient.Config
	Statistics api.StatisticsConfig
	Cookie     cookie.Config
	Session    session.Config
	Query      query.Config
	Log        logger.Config
	Redis      redis.Config

	SessionBackend string `env:"SESSION_BACKEND" envDefault:"file"`
	SessionFile    string `env:"SESSION_FILE"`
	EndpointsFile  string `env:"ENDPOINTS_FILE"`
	LoginPath      string `env:"LOGIN_PATH" envDefault:"/login"`
}

func DefaultConfig() Config {
	return Config{
		API:            apiclient.DefaultConfig(),
		Statistics:     api.DefaultStatisticsConfig(),
		Cookie:         cookie.DefaultConfig(),
		Session:        session.DefaultConfig(),
		Query:          query.DefaultConfig(),
		Log:            logger.Config{Level: "info", Format: "text"},
		Redis:          redis.DefaultConfig(),
		SessionBackend: BackendFile,
		LoginPath:      apiclient.LoginPath,
	}
}

// LoadConfig reads Config from LEARNZONE_* variables and a .env file.
func LoadConfig(opts ...config.Option) (Config, error) {
	l := config.NewLoader(append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...)
	var cfg Config
	if err := config.Parse(l, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultSessionFile is $XDG_CONFIG_HOME/learnzone/session.json or the
// platform equivalent.
func DefaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "learnzone", "session.json")
}
