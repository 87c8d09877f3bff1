package query

import "time"

type Config struct {
	StaleTime     time.Duration `env:"QUERY_STALE_TIME" envDefault:"5m"`
	GCTime        time.Duration `env:"QUERY_GC_TIME" envDefault:"10m"`
	Retry         int           `env:"QUERY_RETRY" envDefault:"1"`
	RetryDelay    time.Duration `env:"QUERY_RETRY_DELAY" envDefault:"1s"`
	MaxEntries    int           `env:"QUERY_MAX_ENTRIES" envDefault:"512"`
	SweepInterval time.Duration `env:"QUERY_SWEEP_INTERVAL" envDefault:"1m"`
}

func DefaultConfig() Config {
	return Config{
		StaleTime:     5 * time.Minute,
		GCTime:        10 * time.Minute,
		Retry:         1,
		RetryDelay:    time.Second,
		MaxEntries:    512,
		SweepInterval: time.Minute,
	}
}
