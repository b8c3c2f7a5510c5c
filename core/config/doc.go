// Package config provides type-safe environment variable loading with caching.
// Each configuration type is loaded once and cached for subsequent calls.
//
// The package loads a .env file on first use (github.com/joho/godotenv) and
// parses environment variables into struct fields with
// github.com/caarlos0/env/v11.
//
//	type Config struct {
//		BaseURL string        `env:"FAKESTORE_BASE_URL" envDefault:"https://fakestoreapi.com"`
//		Timeout time.Duration `env:"FAKESTORE_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Use Parse to bypass the cache, e.g. in tests that set variables with t.Setenv.
package config
