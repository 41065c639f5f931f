package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, "admin@example.com", cfg.Master.Email)
	assert.Equal(t, "Master Admin", cfg.Master.Username)
	assert.False(t, cfg.Notifier.Enabled)
	assert.Equal(t, "personalbook-photos", cfg.Storage.Bucket)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("HTTP_PORT", "8443")
	t.Setenv("HTTP_ENABLE_HTTPS", "true")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/book")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("MASTER_EMAIL", "root@book.dev")
	t.Setenv("SES_ENABLED", "true")
	t.Setenv("SES_SENDER", "noreply@book.dev")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8443", cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "postgres://u:p@db:5432/book", cfg.Database.DSN)
	assert.Equal(t, "supersecret", cfg.JWT.Secret)
	assert.Equal(t, "root@book.dev", cfg.Master.Email)
	assert.True(t, cfg.Notifier.Enabled)
	assert.Equal(t, "noreply@book.dev", cfg.Notifier.Sender)
	assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
}
