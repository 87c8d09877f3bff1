package apiclient

import "time"

// Config describes one API endpoint.
type Config struct {
	BaseURL   string        `env:"API_URL" envDefault:"http://localhost:3000"`
	Timeout   time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"API_USER_AGENT" envDefault:"learnzone-admin/1.0"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:3000",
		Timeout:   10 * time.Second,
		UserAgent: "learnzone-admin/1.0",
	}
}
