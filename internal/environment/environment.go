// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

const (
	modeProduction  = "production"
	modeDevelopment = "development"
)

// EnvironmentConfig is the full set of environment-specific constants read by
// the client at startup.
type EnvironmentConfig struct {
	// Production selects the production build/runtime mode.
	Production bool `json:"production"`

	// APIServerURL is the absolute base URL of the Coffee Shop API server.
	APIServerURL string `json:"apiServerUrl"`

	// Auth describes the Auth0 application the client logs in with.
	Auth AuthConfig `json:"auth"`
}

// AuthConfig holds the Auth0 tenant and application identifiers.
type AuthConfig struct {
	// DomainPrefix is the tenant part of the Auth0 domain,
	// i.e. "{DomainPrefix}.auth0.com".
	DomainPrefix string `json:"domainPrefix"`

	// Audience is the API identifier access tokens are issued for.
	Audience string `json:"audience"`

	// ClientID is the Auth0 application client identifier.
	ClientID string `json:"clientId"`

	// CallbackURL is where Auth0 redirects after a completed login.
	CallbackURL string `json:"callbackUrl"`
}

var current = EnvironmentConfig{
	Production:   production,
	APIServerURL: "https://127.0.0.1:5000",
	Auth: AuthConfig{
		DomainPrefix: "dev-dehgo0dr.us",
		Audience:     "Coffe_Shop",
		ClientID:     "5AyIOToeyyKg9bPEIdAZYwnggj8EGDGS",
		CallbackURL:  "https://127.0.0.1:8100",
	},
}

// Get returns the environment configuration compiled into the binary.
//
// The value is returned by copy, so callers may modify their result without
// affecting any other reader.
func Get() EnvironmentConfig {
	return current
}

// Mode returns "production" or "development" depending on [EnvironmentConfig.Production].
func (c EnvironmentConfig) Mode() string {
	if c.Production {
		return modeProduction
	}
	return modeDevelopment
}

// Domain returns the Auth0 tenant host, e.g. "dev-dehgo0dr.us.auth0.com".
func (a AuthConfig) Domain() string {
	return a.DomainPrefix + ".auth0.com"
}

// Issuer returns the "iss" claim Auth0 puts into tokens of this tenant.
func (a AuthConfig) Issuer() string {
	return "https://" + a.Domain() + "/"
}
