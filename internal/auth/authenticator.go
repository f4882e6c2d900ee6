// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the client side of the Auth0 implicit login flow
// for the Coffee Shop API.
//
// URLs are derived from [environment.AuthConfig]: the tenant domain comes
// from the domain prefix and Auth0 redirects back to the callback URL with
// the access token in the URL fragment. The client holds no signing key, so
// tokens are decoded without signature verification; the API server remains
// the authority that verifies them.
package auth

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/coffee-shop-client/internal/environment"
	"github.com/MKhiriev/coffee-shop-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator builds Auth0 URLs and decodes access tokens for one
// environment.
type Authenticator struct {
	cfg environment.AuthConfig
	now func() time.Time
}

// NewAuthenticator returns an Authenticator for env.
func NewAuthenticator(env environment.EnvironmentConfig) *Authenticator {
	return &Authenticator{cfg: env.Auth, now: time.Now}
}

// LoginURL returns the Auth0 /authorize URL that starts an implicit-flow
// login. callbackPath is appended to the configured callback URL and may be
// empty.
func (a *Authenticator) LoginURL(callbackPath string) string {
	q := url.Values{}
	q.Set("audience", a.cfg.Audience)
	q.Set("response_type", "token")
	q.Set("client_id", a.cfg.ClientID)
	q.Set("redirect_uri", a.redirectURI(callbackPath))

	u := url.URL{
		Scheme:   "https",
		Host:     a.cfg.Domain(),
		Path:     "/authorize",
		RawQuery: q.Encode(),
	}
	return u.String()
}

// LogoutURL returns the Auth0 logout URL that returns to the callback URL.
func (a *Authenticator) LogoutURL() string {
	q := url.Values{}
	q.Set("client_id", a.cfg.ClientID)
	q.Set("returnTo", a.cfg.CallbackURL)

	u := url.URL{
		Scheme:   "https",
		Host:     a.cfg.Domain(),
		Path:     "/v2/logout",
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (a *Authenticator) redirectURI(callbackPath string) string {
	if callbackPath == "" {
		return a.cfg.CallbackURL
	}
	return strings.TrimRight(a.cfg.CallbackURL, "/") + "/" + strings.TrimLeft(callbackPath, "/")
}

// ParseCallbackFragment extracts the access token from the fragment Auth0
// appends to the callback URL, e.g.
// "#access_token=...&expires_in=7200&token_type=Bearer". The leading "#" is
// optional.
func ParseCallbackFragment(fragment string) (string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(fragment), "#"))
	if err != nil {
		return "", fmt.Errorf("parse callback fragment: %w", err)
	}

	if authErr := values.Get("error"); authErr != "" {
		if desc := values.Get("error_description"); desc != "" {
			return "", fmt.Errorf("%w: %s: %s", ErrLoginFailed, authErr, desc)
		}
		return "", fmt.Errorf("%w: %s", ErrLoginFailed, authErr)
	}

	token := values.Get("access_token")
	if token == "" {
		return "", ErrMissingAccessToken
	}

	return token, nil
}

// ParseToken decodes raw without verifying its signature and checks that it
// was issued by this tenant for this audience and has not expired.
func (a *Authenticator) ParseToken(raw string) (models.Token, error) {
	token := models.Token{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &token); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	validator := jwt.NewValidator(
		jwt.WithIssuer(a.cfg.Issuer()),
		jwt.WithAudience(a.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err := validator.Validate(&token); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	token.SignedString = raw
	return token, nil
}
