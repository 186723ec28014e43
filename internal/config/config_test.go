package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SITE_APP_PORT", "DATABASE_URL", "SITE_DATABASE_URL", "DATABASE_NAME", "SITE_DATABASE_NAME",
		"NATS_URL", "SITE_NATS_URL", "SITE_DATABASE_CONNECT_TIMEOUT", "SITE_DIAGNOSTICS_TIMEOUT", "SITE_CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Contractor Site API", cfg.AppName)
	require.Equal(t, "8000", cfg.AppPort)
	require.Equal(t, ":8000", cfg.HTTPAddress())
	require.Equal(t, 10*time.Second, cfg.DatabaseTimeout)
	require.Equal(t, 5*time.Second, cfg.DiagnosticsTimeout)
	require.Equal(t, "*", cfg.CORSAllowOrigins)
	require.Equal(t, "site.contact.submitted", cfg.ContactNotifySubject)
	require.False(t, cfg.DatabaseConfigured())
	require.False(t, cfg.DatabaseNameConfigured())
}

func TestLoadReadsUnprefixedDatabaseVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "site")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.DatabaseConfigured())
	require.True(t, cfg.DatabaseNameConfigured())
	require.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	require.Equal(t, "site", cfg.DatabaseName)
	require.Equal(t, ":9090", cfg.HTTPAddress())
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("SITE_DIAGNOSTICS_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
