// Package config loads the runtime settings of the Coffee Shop client.
//
// These settings tune how the client talks to the API and Auth0 (timeouts,
// TLS, a pre-issued access token, the log file). They never alter the
// environment constants exposed by package environment.
//
// Settings are assembled from the following sources (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables prefixed with COFFEE_
//  3. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
