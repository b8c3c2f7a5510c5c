package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/config"
)

type parseConfig struct {
	BaseURL string        `env:"STOREFRONT_TEST_BASE_URL" envDefault:"https://fakestoreapi.com"`
	Timeout time.Duration `env:"STOREFRONT_TEST_TIMEOUT" envDefault:"10s"`
}

type cachedConfig struct {
	Port int `env:"STOREFRONT_TEST_CACHED_PORT" envDefault:"8080"`
}

type badConfig struct {
	Port int `env:"STOREFRONT_TEST_BAD_PORT"`
}

func TestParse_Defaults(t *testing.T) {
	var cfg parseConfig
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "https://fakestoreapi.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_BASE_URL", "http://localhost:9999")
	t.Setenv("STOREFRONT_TEST_TIMEOUT", "250ms")

	var cfg parseConfig
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestParse_Error(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_BAD_PORT", "not-an-int")

	var cfg badConfig
	err := config.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse env")
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_CACHED_PORT", "9000")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, 9000, first.Port)

	t.Setenv("STOREFRONT_TEST_CACHED_PORT", "9100")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, 9000, second.Port)
}

func TestLoad_InvalidTarget(t *testing.T) {
	var notStruct int
	var nilPtr *parseConfig

	assert.ErrorIs(t, config.Load(nil), config.ErrInvalidTarget)
	assert.ErrorIs(t, config.Load(parseConfig{}), config.ErrInvalidTarget)
	assert.ErrorIs(t, config.Load(&notStruct), config.ErrInvalidTarget)
	assert.ErrorIs(t, config.Load(nilPtr), config.ErrInvalidTarget)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() { config.MustLoad(nil) })
}
