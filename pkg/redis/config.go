package redis

import "time"

// Config describes the connection and the key layout of the cookie backend.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"learnzone:session:"`
	ScanBatchSize  int           `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"100"`
}

// DefaultConfig returns settings for a local server.
func DefaultConfig() Config {
	return Config{
		ConnectionURL:  "redis://localhost:6379/0",
		RetryAttempts:  3,
		RetryInterval:  2 * time.Second,
		ConnectTimeout: 10 * time.Second,
		KeyPrefix:      "learnzone:session:",
		ScanBatchSize:  100,
	}
}
