// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment exposes the deployment constants of the Coffee Shop
// client: the API server base URL and the Auth0 tenant settings used by the
// login flow.
//
// The values are fixed at build time. The default build yields the
// development environment; building with the "production" tag flips
// [EnvironmentConfig.Production]. Nothing in this package reads files,
// flags or environment variables, so [Get] never fails and is safe for any
// number of concurrent readers.
package environment
