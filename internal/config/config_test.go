package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)

	assert.Equal(t, 140, cfg.Parser.StateZipWindow)
	assert.Equal(t, 160, cfg.Parser.AgentMarkerWindow)
	assert.Equal(t, 14, cfg.Parser.MaxOfficerNameTokens)
	assert.Equal(t, 3, cfg.Parser.MaxCityTokens)

	assert.Equal(t, 720*time.Hour, cfg.Prefill.TokenExpiry)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, 10000, cfg.Loader.BatchSize)
	assert.Equal(t, "", cfg.Admin.APIKeyHash)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SUNBIZ_SERVER_PORT", ":9999")
	t.Setenv("SUNBIZ_DB_HOST", "db.internal")
	t.Setenv("SUNBIZ_PARSER_STATE_ZIP_WINDOW", "80")
	t.Setenv("SUNBIZ_PREFILL_TOKEN_EXPIRY", "48h")
	t.Setenv("SUNBIZ_EMAIL_PROVIDER", "ses")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 80, cfg.Parser.StateZipWindow)
	assert.Equal(t, 48*time.Hour, cfg.Prefill.TokenExpiry)
	assert.Equal(t, "ses", cfg.Email.Provider)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{
		Host: "localhost", Port: 5432, User: "sunbiz", Password: "pw",
		Name: "sunbiz_db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://sunbiz:pw@localhost:5432/sunbiz_db?sslmode=disable", d.DSN())
}
