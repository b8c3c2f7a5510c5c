package fakestore

import "time"

// Config holds the API client configuration.
type Config struct {
	BaseURL        string        `env:"FAKESTORE_BASE_URL" envDefault:"https://fakestoreapi.com"`
	Timeout        time.Duration `env:"FAKESTORE_TIMEOUT" envDefault:"10s"`
	RetryAttempts  int           `env:"FAKESTORE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"FAKESTORE_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay  time.Duration `env:"FAKESTORE_RETRY_MAX_DELAY" envDefault:"30s"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://fakestoreapi.com",
		Timeout:        10 * time.Second,
		RetryAttempts:  3,
		RetryBaseDelay: 100 * time.Millisecond,
		RetryMaxDelay:  30 * time.Second,
	}
}
