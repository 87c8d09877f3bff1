package cookie

import "net/http"

// Config holds the default attributes of a Store.
type Config struct {
	Path        string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string        `env:"COOKIE_DOMAIN" envDefault:""`
	ExpiresDays float64       `env:"COOKIE_EXPIRES_DAYS" envDefault:"7"`
	Secure      bool          `env:"COOKIE_SECURE" envDefault:"true"`
	SameSite    http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"3"` // 3 = SameSiteStrictMode
}

// DefaultConfig returns the strict attribute set as configuration.
func DefaultConfig() Config {
	return Config{
		Path:        "/",
		ExpiresDays: DefaultExpiresDays,
		Secure:      true,
		SameSite:    http.SameSiteStrictMode,
	}
}

// NewFromConfig creates a Store whose defaults come from cfg.
// Only non-zero values from the config are applied over the strict set.
func NewFromConfig(cfg Config, backend Backend, opts ...Option) (*Store, error) {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.ExpiresDays != 0 {
		configOpts = append(configOpts, WithExpires(cfg.ExpiresDays))
	}
	configOpts = append(configOpts, WithSecure(cfg.Secure))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(backend, configOpts...)
}
