package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, filepath.Join("data", "ziad_store.sqlite3"), cfg.DB.Path)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.UseTLS)
	assert.Empty(t, cfg.SMTP.Host)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DB_PATH", "/tmp/test-store.sqlite3")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USERNAME", "shop")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("EMAIL_FROM", "shop@example.com")
	t.Setenv("SMTP_USE_TLS", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "/tmp/test-store.sqlite3", cfg.DB.Path)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "shop", cfg.SMTP.Username)
	assert.Equal(t, "secret", cfg.SMTP.Password)
	assert.Equal(t, "shop@example.com", cfg.SMTP.From)
	assert.False(t, cfg.SMTP.UseTLS)
}

func TestLoad_InvalidSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := Load("")
	assert.Error(t, err)
}
