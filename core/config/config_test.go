package config_test

import (
	"testing"

	"inventory-checker/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Persist.Driver)
	assert.Equal(t, "./data", cfg.Persist.Dir)
	assert.Equal(t, 500, cfg.Intake.DebounceMS)
	assert.Equal(t, "auto", cfg.Intake.Mode)
	assert.Equal(t, "inventory", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PERSIST_DRIVER", "object")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("INTAKE_DEBOUNCE_MS", "250")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "object", cfg.Persist.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 250, cfg.Intake.DebounceMS)
}
