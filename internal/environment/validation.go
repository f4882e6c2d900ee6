// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the shape of the configuration so consumers can fail fast
// with a descriptive error before using it.
//
// Every offending field is reported; the returned error wraps [ErrEmptyField]
// or [ErrInvalidURL] and can be inspected with [errors.Is].
func (c EnvironmentConfig) Validate() error {
	var errs []error

	if err := validateAbsoluteURL("apiServerUrl", c.APIServerURL); err != nil {
		errs = append(errs, err)
	}
	if err := c.Auth.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (a AuthConfig) validate() error {
	var errs []error

	for _, field := range []struct {
		name  string
		value string
	}{
		{"auth.domainPrefix", a.DomainPrefix},
		{"auth.audience", a.Audience},
		{"auth.clientId", a.ClientID},
	} {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, fmt.Errorf("%s: %w", field.name, ErrEmptyField))
		}
	}

	if err := validateAbsoluteURL("auth.callbackUrl", a.CallbackURL); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateAbsoluteURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", field, ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%s: %w: %q", field, ErrInvalidURL, raw)
	}

	return nil
}
