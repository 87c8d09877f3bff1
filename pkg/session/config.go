package session

import "time"

// Config holds token lifetimes and the expiry warning threshold.
type Config struct {
	AccessTokenDays  float64       `env:"SESSION_ACCESS_TOKEN_DAYS" envDefault:"7"`
	RefreshTokenDays float64       `env:"SESSION_REFRESH_TOKEN_DAYS" envDefault:"30"`
	ExpiryThreshold  time.Duration `env:"SESSION_EXPIRY_THRESHOLD" envDefault:"5m"`
}

func DefaultConfig() Config {
	return Config{
		AccessTokenDays:  DefaultAccessTokenDays,
		RefreshTokenDays: RefreshTokenDays,
		ExpiryThreshold:  5 * time.Minute,
	}
}
