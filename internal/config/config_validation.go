// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied by applyDefaults when neither environment,
// flags, nor the JSON file specify them.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultTokenIssuer     = "stockfolio"
	defaultTokenDuration   = 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultProviderBaseURL = "http://api.marketstack.com"
	defaultProviderTimeout = 5 * time.Second
)

// applyDefaults fills zero-valued optional fields of the merged config.
// Secrets (DSN, token sign key, provider access key) have no defaults and
// are enforced by validate instead.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = defaultProviderBaseURL
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = defaultProviderTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Provider.AccessKey == "" {
		return ErrInvalidProviderConfigs
	}

	return nil
}
