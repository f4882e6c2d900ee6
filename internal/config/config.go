// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const envPrefix = "COFFEE_"

// ClientConfig is the top-level runtime configuration of the client.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with COFFEE_.
type ClientConfig struct {
	// Adapter holds settings of the outbound HTTP client used for the
	// drinks API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds settings of the Auth0 login flow.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Args holds the positional command-line arguments left after flag
	// parsing (the subcommand and its operands).
	Args []string
}

// Adapter holds settings for the drinks API transport.
type Adapter struct {
	// RequestTimeout is the default timeout for outbound requests.
	// Env: COFFEE_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureTLS disables server certificate verification. The API
	// server runs with a self-signed certificate in development; the
	// setting is refused in production builds.
	// Env: COFFEE_ADAPTER_INSECURE_TLS
	InsecureTLS bool `env:"INSECURE_TLS"`
}

// Auth holds settings for the login flow and authenticated requests.
type Auth struct {
	// AccessToken is an already issued Auth0 access token. When set, the
	// client skips the interactive login.
	// Env: COFFEE_AUTH_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// CertFile and KeyFile are the TLS certificate pair the callback
	// listener serves with when the callback URL uses https.
	// Env: COFFEE_AUTH_CERT_FILE, COFFEE_AUTH_KEY_FILE
	CertFile string `env:"CERT_FILE"`
	KeyFile  string `env:"KEY_FILE"`

	// LoginTimeout bounds how long the client waits for the Auth0 redirect.
	// Env: COFFEE_AUTH_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the file log entries are appended to. Empty means stderr.
	// Env: COFFEE_LOG_FILE
	FilePath string `env:"FILE"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{RequestTimeout: 15 * time.Second},
		Auth:    Auth{LoginTimeout: 5 * time.Minute},
	}
}

// GetClientConfig loads, merges, and validates the client configuration from
// defaults, environment variables and the given command-line arguments
// (without the program name).
func GetClientConfig(args []string) (*ClientConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
