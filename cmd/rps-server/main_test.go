package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/testutil"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "STORAGE_TYPE", "REDIS_URL", "RPS_MAX_ROUNDS", "RPS_DEFAULT_ROUNDS", "SESSION_DURATION"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, serverCfg, err := loadConfig(testutil.NopLogger())
	require.NoError(t, err)
	require.NotNil(t, cfg.RoundsPolicy)
	assert.Equal(t, model.DefaultRoundsPolicy(), *cfg.RoundsPolicy)
	assert.Equal(t, 8080, serverCfg.Port)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RPS_MAX_ROUNDS", "0")
	t.Setenv("RPS_DEFAULT_ROUNDS", "15")
	t.Setenv("SESSION_DURATION", "2h")

	cfg, serverCfg, err := loadConfig(testutil.NopLogger())
	require.NoError(t, err)
	assert.Equal(t, 9000, serverCfg.Port)
	assert.Equal(t, model.RoundsPolicy{Max: 0, Default: 15}, *cfg.RoundsPolicy)
	assert.Equal(t, 2*time.Hour, cfg.AuthConfig.SessionDuration)
}

func TestLoadConfigRejectsDefaultAboveMax(t *testing.T) {
	t.Run("implicit default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RPS_MAX_ROUNDS", "2")

		_, _, err := loadConfig(testutil.NopLogger())
		assert.ErrorIs(t, err, model.ErrInvalidConfig)
	})

	t.Run("explicit default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RPS_MAX_ROUNDS", "5")
		t.Setenv("RPS_DEFAULT_ROUNDS", "7")

		_, _, err := loadConfig(testutil.NopLogger())
		assert.ErrorIs(t, err, model.ErrInvalidConfig)
	})

	t.Run("lowered max with fitting default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RPS_MAX_ROUNDS", "2")
		t.Setenv("RPS_DEFAULT_ROUNDS", "1")

		cfg, _, err := loadConfig(testutil.NopLogger())
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.RoundsPolicy.DefaultRounds())
	})
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for key, value := range map[string]string{
		"PORT":               "http",
		"RPS_MAX_ROUNDS":     "-1",
		"RPS_DEFAULT_ROUNDS": "0",
		"SESSION_DURATION":   "forever",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, _, err := loadConfig(testutil.NopLogger())
			assert.Error(t, err)
		})
	}

	t.Run("redis without url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORAGE_TYPE", "redis")

		_, _, err := loadConfig(testutil.NopLogger())
		assert.Error(t, err)
	})
}
