package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsFrom_AllFlags(t *testing.T) {
	cfg, err := parseFlagsFrom([]string{
		"-a", "localhost:9090",
		"-d", "postgres://u:p@localhost:5432/stocks",
		"-token-sign-key", "sign-key",
		"-token-issuer", "issuer",
		"-token-duration", "12h",
		"-request-timeout", "45s",
		"-provider-url", "http://quotes.example.com",
		"-provider-access-key", "abc123",
		"-provider-timeout", "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost:5432/stocks", cfg.Storage.DB.DSN)
	assert.Equal(t, "sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://quotes.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, "abc123", cfg.Provider.AccessKey)
	assert.Equal(t, 3*time.Second, cfg.Provider.Timeout)
}

func TestParseFlagsFrom_NoFlags(t *testing.T) {
	cfg, err := parseFlagsFrom(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Auth.TokenDuration)
}

func TestParseFlagsFrom_ConfigAlias(t *testing.T) {
	cfg, err := parseFlagsFrom([]string{"-config", "/etc/stockfolio.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/stockfolio.json", cfg.JSONFilePath)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip address", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
