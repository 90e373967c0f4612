package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisdom2788/youthguard-go/core/config"
)

// Each test uses its own config type: the loader caches per type and tests
// must not observe each other's values.

func TestLoad(t *testing.T) {
	t.Run("parses env tags with defaults", func(t *testing.T) {
		type defaultsConfig struct {
			BaseURL string        `env:"TEST_DEFAULTS_BASE_URL" envDefault:"http://localhost:5000/api"`
			Timeout time.Duration `env:"TEST_DEFAULTS_TIMEOUT" envDefault:"15s"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("reads values from the environment", func(t *testing.T) {
		type envConfig struct {
			BaseURL string `env:"TEST_ENV_BASE_URL" envDefault:"http://localhost:5000/api"`
		}

		t.Setenv("TEST_ENV_BASE_URL", "https://api.example.com")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
		}

		t.Setenv("TEST_CACHED_VALUE", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CACHED_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, first, second)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *struct{}
		require.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"TEST_REQUIRED_SECRET,required"`
		}

		var cfg requiredConfig
		require.Error(t, config.Load(&cfg))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		type mustConfig struct {
			Secret string `env:"TEST_MUST_SECRET,required"`
		}

		assert.Panics(t, func() {
			var cfg mustConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("returns loaded config", func(t *testing.T) {
		type mustOKConfig struct {
			Value string `env:"TEST_MUST_OK_VALUE" envDefault:"ok"`
		}

		var cfg mustOKConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "ok", cfg.Value)
	})
}
