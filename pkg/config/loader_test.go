package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"FORMRULES_DEFAULT_NAME" envDefault:"default_value"`
	Count int    `env:"FORMRULES_DEFAULT_COUNT" envDefault:"42"`
	On    bool   `env:"FORMRULES_DEFAULT_ON" envDefault:"true"`
}

type successConfig struct {
	Name  string `env:"FORMRULES_SUCCESS_NAME"`
	Count int    `env:"FORMRULES_SUCCESS_COUNT"`
}

type cachedConfig struct {
	Name string `env:"FORMRULES_CACHED_NAME" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"FORMRULES_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Name   string   `env:"FORMRULES_TEST_NAME"`
	List   []string `env:"FORMRULES_TEST_LIST" envSeparator:","`
	Quoted string   `env:"FORMRULES_TEST_QUOTED"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment", func(t *testing.T) {
		t.Setenv("FORMRULES_SUCCESS_NAME", "value")
		t.Setenv("FORMRULES_SUCCESS_COUNT", "100")
		config.ResetCache()

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "value", cfg.Name)
		assert.Equal(t, 100, cfg.Count)
	})

	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, defaultsConfig{Name: "default_value", Count: 42, On: true}, cfg)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("FORMRULES_CACHED_NAME", "second")
		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name)

		config.ResetCache()
		var fresh cachedConfig
		require.NoError(t, config.Load(&fresh))
		assert.Equal(t, "second", fresh.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[successConfig](nil), config.ErrNilPointer)
	})
}

func TestParse(t *testing.T) {
	t.Setenv("FORMRULES_SUCCESS_NAME", "direct")

	cfg, err := config.Parse[successConfig]()
	require.NoError(t, err)
	assert.Equal(t, "direct", cfg.Name)
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads custom file", func(t *testing.T) {
		// Register cleanup so variables set by godotenv are removed afterwards.
		t.Setenv("FORMRULES_TEST_NAME", "")
		t.Setenv("FORMRULES_TEST_LIST", "")
		t.Setenv("FORMRULES_TEST_QUOTED", "")
		unsetAll(t, "FORMRULES_TEST_NAME", "FORMRULES_TEST_LIST", "FORMRULES_TEST_QUOTED")

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		cfg, err := config.Parse[fileConfig]()
		require.NoError(t, err)
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
		assert.Equal(t, "quoted value", cfg.Quoted)
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		t.Setenv("FORMRULES_TEST_NAME", "from_env")

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		cfg, err := config.Parse[fileConfig]()
		require.NoError(t, err)
		assert.Equal(t, "from_env", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/.env.missing")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/.env.missing") })
	})
}
