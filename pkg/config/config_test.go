package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "./portal_audit.db", cfg.Audit.DBPath)
	assert.Equal(t, 4, cfg.Portal.MaxEnrollment)
	assert.Equal(t, 10, cfg.Portal.BcryptCost)
	assert.Equal(t, "./exports", cfg.Reports.StorageDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORTAL_MAX_ENROLLMENT", "6")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Portal.MaxEnrollment)
	assert.Equal(t, "json", cfg.Log.Format)
}
