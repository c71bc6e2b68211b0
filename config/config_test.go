package config

import (
	"encoding/base64"
	"testing"

	"aidanwoods.dev/go-paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestKeys(t *testing.T) {
	t.Helper()
	secretKey := paseto.NewV4AsymmetricSecretKey()
	publicKey := secretKey.Public()
	t.Setenv("PASETO_PRIVATE_KEY", base64.StdEncoding.EncodeToString(secretKey.ExportBytes()))
	t.Setenv("PASETO_PUBLIC_KEY", base64.StdEncoding.EncodeToString(publicKey.ExportBytes()))
}

func TestLoadDefaults(t *testing.T) {
	setTestKeys(t)

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "koinonia", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.NotEmpty(t, cfg.Geocoding.Endpoint)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	setTestKeys(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_NAME", "koinonia_test")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ROOT_EMAIL", "admin@example.com")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "koinonia_test", cfg.Database.DBName)
	assert.Equal(t, "admin@example.com", cfg.RootEmail)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadMissingKeys(t *testing.T) {
	t.Setenv("PASETO_PRIVATE_KEY", "")
	t.Setenv("PASETO_PUBLIC_KEY", "")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PASETO_PRIVATE_KEY is required")
}

func TestLoadBadKeyEncoding(t *testing.T) {
	t.Setenv("PASETO_PRIVATE_KEY", "not-base64!!!")
	t.Setenv("PASETO_PUBLIC_KEY", "not-base64!!!")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
}
