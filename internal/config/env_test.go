package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8085")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("AUTH_TOKEN_DURATION", "6h")
	t.Setenv("PROVIDER_ACCESS_KEY", "env-access")
	t.Setenv("PROVIDER_TIMEOUT", "2s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:8085", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 6*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "env-access", cfg.Provider.AccessKey)
	assert.Equal(t, 2*time.Second, cfg.Provider.Timeout)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
